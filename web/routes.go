package web

import (
	"net/http"

	"github.com/go-chi/chi"
)

func setupRoutes(h *handler, db dbProvider) (http.Handler, error) {
	router := chi.NewRouter()

	router.Use(db.middleware)

	router.Route("/builds", func(router chi.Router) {
		router.Get("/", h.getBuildsHandler)
		router.Post("/", h.createBuildHandler)

		router.Route("/{buildId}", func(router chi.Router) {
			router.Get("/", h.getBuildHandler)
			router.Patch("/", h.updateBuildHandler)
			router.Delete("/", h.removeBuildHandler)
			router.Post("/clear", h.clearBuildHandler)

			router.Route("/parts", func(router chi.Router) {
				router.Post("/", h.addPartHandler)
				router.Post("/check", h.checkPlacementHandler)
				router.Get("/{partId}", h.getPartHandler)
				router.Delete("/{partId}", h.removePartHandler)
			})

			router.Get("/validation", h.validateBuildHandler)

			router.Route("/patterns", func(router chi.Router) {
				router.Post("/base", h.patternBaseHandler)
				router.Post("/wall", h.patternWallHandler)
				router.Post("/column", h.patternColumnHandler)
				router.Post("/wing", h.patternWingHandler)
			})

			router.Route("/export", func(router chi.Router) {
				router.Get("/ldraw", h.exportLdrawHandler)
				router.Get("/ldraw/download", h.downloadLdrawHandler)
				router.Get("/bom", h.exportBomHandler)
			})

			router.Get("/live", h.liveHandler)
		})
	})

	return router, nil
}
