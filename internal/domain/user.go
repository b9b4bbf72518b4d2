package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered account.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName    string             `bson:"firstName" json:"firstName"`
	LastName     string             `bson:"lastName" json:"lastName"`
	UserName     string             `bson:"userName" json:"userName"`
	EmailID      string             `bson:"emailId" json:"emailId"`
	PasswordHash string             `bson:"password" json:"-"`
}

// MemberInfo is the public projection of a user inside a team listing.
type MemberInfo struct {
	UserName string `bson:"userName" json:"userName"`
	EmailID  string `bson:"emailId" json:"emailId"`
}
