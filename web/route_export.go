package web

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/Maxwell1111/Lego-Interligence/ldraw"
	"github.com/Maxwell1111/Lego-Interligence/model"
)

// bomEntry is one line of the bill of materials, sorted by quantity.
type bomEntry struct {
	PartID    string `json:"partId"`
	Color     int    `json:"color"`
	ColorName string `json:"colorName"`
	Quantity  int    `json:"quantity"`
}

func (h *handler) exportLdrawHandler(w http.ResponseWriter, r *http.Request) {
	build, err := h.fetchBuild(r)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	_ = writeJSONResponse(w, http.StatusOK, map[string]string{
		"filename": ldraw.Filename(build),
		"content":  ldraw.Export(build),
	})
}

func (h *handler) downloadLdrawHandler(w http.ResponseWriter, r *http.Request) {
	build, err := h.fetchBuild(r)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(
		"Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", ldraw.Filename(build)),
	)
	if _, writeErr := w.Write([]byte(ldraw.Export(build))); writeErr != nil {
		log.Errorf("ldraw download write failed: %s", writeErr.Error())
	}
}

func (h *handler) exportBomHandler(w http.ResponseWriter, r *http.Request) {
	build, err := h.fetchBuild(r)
	if err != nil {
		handleRequestErr(w, err)
		return
	}

	entries := []bomEntry{}
	for key, quantity := range build.BOM() {
		entries = append(entries, bomEntry{
			PartID:    key.PartID,
			Color:     key.Color,
			ColorName: model.ColorName(key.Color),
			Quantity:  quantity,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quantity != entries[j].Quantity {
			return entries[i].Quantity > entries[j].Quantity
		}
		if entries[i].PartID != entries[j].PartID {
			return entries[i].PartID < entries[j].PartID
		}
		return entries[i].Color < entries[j].Color
	})

	_ = writeJSONResponse(w, http.StatusOK, map[string]interface{}{
		"entries":    entries,
		"totalParts": len(build.Parts),
	})
}

func (h *handler) fetchBuild(r *http.Request) (*model.BuildState, error) {
	buildID, idErr := extractBuildID(r)
	if idErr != nil {
		return nil, idErr
	}
	return h.BuildGet(extractDBSession(r.Context()), buildID)
}
