package web

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/go-chi/chi"
	"gopkg.in/mgo.v2/bson"

	"github.com/Maxwell1111/Lego-Interligence/errors"
	"github.com/Maxwell1111/Lego-Interligence/model/mongo"
)

type contextKeyType string

const contextDBSessionKey contextKeyType = "dbSession"

func extractDBSession(ctx context.Context) mongo.DB {
	dbSessionObj := ctx.Value(contextDBSessionKey)
	if dbSessionObj == nil {
		log.Error("[ASSERT] Missing db session in context")
		debug.PrintStack()
	}
	dbSession, assertOk := dbSessionObj.(mongo.DB)
	if !assertOk {
		log.Error("[ASSERT] Wrong type for db session")
		debug.PrintStack()
	}
	return dbSession
}

func extractBuildID(r *http.Request) (bson.ObjectId, error) {
	return mongo.ConvertToObjectId(chi.URLParam(r, "buildId"))
}

func extractPartID(r *http.Request) (int, error) {
	id, idErr := strconv.Atoi(chi.URLParam(r, "partId"))
	if idErr != nil {
		return 0, errors.ErrNotFound
	}
	return id, nil
}

func writeJSONResponse(w http.ResponseWriter, httpStatus int, body interface{}) error {
	marshaled, marshalingErr := json.Marshal(body)
	if marshalingErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return marshalingErr
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_, writeErr := w.Write(marshaled)
	return writeErr
}

func decodeJSONRequest(r *http.Request, unpackObject interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(unpackObject); err != nil {
		return errors.ErrMalformed
	}
	return nil
}

func handleRequestErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch err.(type) {
	case errors.FormError:
		status = http.StatusBadRequest
	default:
		switch err {
		case errors.ErrNotFound:
			status = http.StatusNotFound
		case errors.ErrMalformed, errors.ErrInvalidForm:
			status = http.StatusBadRequest
		}
	}
	_ = writeJSONResponse(w, status, map[string]string{"error": err.Error()})
}
