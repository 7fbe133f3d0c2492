package schema

// FriendshipTable represents the 'friendships' table.
//
// One row exists per unordered user pair. (user_1, user_2, status=false)
// means user_1 added user_2; status=true means the edge was reciprocated
// and both users see each other as friends.
type FriendshipTable struct {
	Table   string
	UserOne string
	UserTwo string
	Status  string
}

// Friendship is the schema definition for friendships
var Friendship = FriendshipTable{
	Table:   "friendships",
	UserOne: "user_1",
	UserTwo: "user_2",
	Status:  "status",
}
