package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Team is a named group of users, referenced by userName.
// Creator is always one of Members at creation time.
type Team struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Members []string           `bson:"members" json:"members"`
	Creator string             `bson:"creator" json:"creator"`
}

// TeamName is the projection used by the team listing endpoint.
type TeamName struct {
	Name string `bson:"name" json:"name"`
}

// TeamDetail is a team with its members expanded to user records.
type TeamDetail struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Members []MemberInfo       `json:"members"`
}

// HasMember reports whether userName is currently in the member list.
func (t *Team) HasMember(userName string) bool {
	for _, m := range t.Members {
		if m == userName {
			return true
		}
	}
	return false
}
