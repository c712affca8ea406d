package mongo

import (
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/errors"
)

// ConvertToObjectId parses an id string, mapping malformed ids to ErrNotFound.
func ConvertToObjectId(id string) (binaryID bson.ObjectId, convertErr error) {
	defer func() {
		if err := recover(); err != nil {
			binaryID = ""
			convertErr = errors.ErrNotFound
		}
	}()
	return bson.ObjectIdHex(id), nil
}
