package mongo

import (
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"
)

type collection struct {
	collection *mgo.Collection
}

func (c collection) Find(query bson.M) *mgo.Query {
	return c.collection.Find(query)
}
func (c collection) FindID(id bson.ObjectId) *mgo.Query {
	return c.collection.FindId(id)
}
func (c collection) Insert(docs ...interface{}) error {
	return c.collection.Insert(docs...)
}
func (c collection) Remove(selector bson.M) error {
	return c.collection.Remove(selector)
}
func (c collection) RemoveID(id bson.ObjectId) error {
	return c.collection.RemoveId(id)
}
func (c collection) Update(selector bson.M, update interface{}) error {
	return c.collection.Update(selector, update)
}
func (c collection) UpdateID(id bson.ObjectId, update interface{}) error {
	return c.collection.UpdateId(id, update)
}
func (c collection) UpsertID(id bson.ObjectId, update interface{}) (info *mgo.ChangeInfo, err error) {
	return c.collection.UpsertId(id, update)
}
