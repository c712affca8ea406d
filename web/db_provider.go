package web

import (
	"context"
	"net/http"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

type dbProvider func() (mongo.DB, error)

func (p dbProvider) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		db, dbErr := p()
		if dbErr != nil {
			handleRequestErr(w, errors.ErrInternalServerError)
			return
		}
		defer db.Close()

		newCtx := context.WithValue(r.Context(), contextDBSessionKey, db)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
