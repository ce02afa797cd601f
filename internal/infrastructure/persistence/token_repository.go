package persistence

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/oauth2"
)

// tokenDocument is the stored form of an OAuth token
type tokenDocument struct {
	Name         string    `bson:"_id"`
	AccessToken  string    `bson:"accessToken"`
	TokenType    string    `bson:"tokenType"`
	RefreshToken string    `bson:"refreshToken"`
	Expiry       time.Time `bson:"expiry"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

// MongoTokenRepository persists OAuth tokens in the tokens collection, one
// document per named credential
type MongoTokenRepository struct {
	collection *mongo.Collection
	name       string
}

// NewMongoTokenRepository creates a token repository for the named credential
func NewMongoTokenRepository(db *Database, name string) *MongoTokenRepository {
	return &MongoTokenRepository{
		collection: db.Collection(CollectionTokens),
		name:       name,
	}
}

// Load returns the stored token, or a NOT_FOUND domain error when no consent
// has been granted yet
func (r *MongoTokenRepository) Load(ctx context.Context) (*oauth2.Token, error) {
	var doc tokenDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": r.name}).Decode(&doc)
	if err != nil {
		return nil, mapError(err)
	}
	return &oauth2.Token{
		AccessToken:  doc.AccessToken,
		TokenType:    doc.TokenType,
		RefreshToken: doc.RefreshToken,
		Expiry:       doc.Expiry,
	}, nil
}

// Store saves the token, replacing any previous one
func (r *MongoTokenRepository) Store(ctx context.Context, token *oauth2.Token) error {
	doc := tokenDocument{
		Name:         r.name,
		AccessToken:  token.AccessToken,
		TokenType:    token.TokenType,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
		UpdatedAt:    time.Now(),
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": r.name}, doc, opts)
	return err
}
