// Package mongo provides the build store.
package mongo

import (
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	conf "github.com/Maxwell1111/Lego-Interligence/config"
)

var log = conf.NamedLogger("db")

const buildCollection = "build"

// PrimaryKey ...
const PrimaryKey = "_id"

// DB Database.
type DB struct {
	session *mgo.Session
	name    string

	Build func() Collection
}

// Close ...
func (db DB) Close() {
	db.session.Close()
}

// Collection is the subset of mgo collection operations the resolvers use.
type Collection interface {
	Find(query bson.M) *mgo.Query
	FindID(id bson.ObjectId) *mgo.Query
	Insert(docs ...interface{}) error
	Remove(selector bson.M) error
	RemoveID(id bson.ObjectId) error
	Update(selector bson.M, update interface{}) error
	UpdateID(id bson.ObjectId, update interface{}) error
	UpsertID(id bson.ObjectId, update interface{}) (info *mgo.ChangeInfo, err error)
}

// SetupDB dials the database and returns a session factory. Every request
// gets its own copied session via the factory.
func SetupDB(config *conf.Config) (func() (DB, error), error) {
	log.Infof("Connecting to db on %s", config.DbURL)

	rootSession, dialErr := mgo.Dial(config.DbURL)
	if dialErr != nil {
		log.Errorf("Unable to connect to db: %s", dialErr.Error())
		return nil, dialErr
	}

	return func() (DB, error) {
		session := rootSession.Copy()
		return newDB(session, config.DbName), nil
	}, nil
}

// SessionDBCreator wraps an existing session into a session factory. The
// caller keeps ownership of the root session.
func SessionDBCreator(rootSession *mgo.Session, name string) func() (DB, error) {
	return func() (DB, error) {
		return newDB(rootSession.Copy(), name), nil
	}
}

func newDB(session *mgo.Session, name string) DB {
	db := session.DB(name)
	return DB{
		session: session,
		name:    name,
		Build: func() Collection {
			return collection{db.C(buildCollection)}
		},
	}
}
