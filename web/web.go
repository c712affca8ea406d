// Package web exposes the validation core over HTTP.
package web

import (
	"net/http"

	mgo "gopkg.in/mgo.v2"

	conf "github.com/Maxwell1111/Lego-Interligence/config"
	"github.com/Maxwell1111/Lego-Interligence/model/action"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

var log = conf.NamedLogger("web")

// NewRouter wires the database, resolver and live hub into an http.Handler.
func NewRouter(config *conf.Config) (http.Handler, error) {
	dbCreatorFunc, dbErr := mongo.SetupDB(config)
	if dbErr != nil {
		log.Error(dbErr.Error())
		return nil, dbErr
	}

	return newRouter(config, dbCreatorFunc)
}

// NewRouterWithSession builds the router on top of an already dialed
// session, used by the API test harness.
func NewRouterWithSession(config *conf.Config, session *mgo.Session) (http.Handler, error) {
	return newRouter(config, mongo.SessionDBCreator(session, config.DbName))
}

func newRouter(config *conf.Config, dbCreatorFunc func() (mongo.DB, error)) (http.Handler, error) {
	h := &handler{
		Resolver: action.NewResolver(config),
		live:     newLiveHub(),
	}

	return setupRoutes(h, dbProvider(dbCreatorFunc))
}

type handler struct {
	*action.Resolver
	live *liveHub
}
