// Package mongostore implements store.Store on MongoDB.
package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"campus-eats/models"
	"campus-eats/store"
)

const databaseName = "campuseats"

// Connect dials MongoDB at the given URI and verifies the connection.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// Store implements store.Store over a mongo client.
type Store struct {
	client *mongo.Client
	users  *userStore
	menus  *menuStore
	orders *orderStore
}

// New creates a Store bound to the campuseats database.
func New(client *mongo.Client) *Store {
	db := client.Database(databaseName)
	return &Store{
		client: client,
		users:  &userStore{col: db.Collection("users")},
		menus:  &menuStore{col: db.Collection("menus")},
		orders: &orderStore{col: db.Collection("orders")},
	}
}

func (s *Store) Users() store.UserStore   { return s.users }
func (s *Store) Menus() store.MenuStore   { return s.menus }
func (s *Store) Orders() store.OrderStore { return s.orders }

// Checkout inserts the order and clears the user's cart in a single
// session transaction, so a failure between the two writes cannot leave
// an order behind with a still-populated cart.
func (s *Store) Checkout(ctx context.Context, user *models.User, order *models.Order) error {
	session, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := s.orders.col.InsertOne(sc, order)
		if err != nil {
			return nil, err
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			order.ID = id
		}
		upd, err := s.users.col.UpdateOne(sc,
			bson.M{"_id": user.ID, "version": user.Version},
			bson.M{"$set": bson.M{"cart": []models.CartItem{}}, "$inc": bson.M{"version": 1}},
		)
		if err != nil {
			return nil, err
		}
		if upd.MatchedCount == 0 {
			return nil, store.ErrVersionConflict
		}
		return res.InsertedID, nil
	})
	return err
}
