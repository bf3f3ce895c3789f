package controllers

import (
	"internship-program-api/render"
	"internship-program-api/services"
	"internship-program-api/storage"
)

// Shared collaborators, set once from main before the router starts.
var (
	fileStore     storage.Store
	certRenderer  render.Renderer
	holidaySource *services.HolidayService
)

// Init wires the storage backend and certificate renderer into the
// handler package.
func Init(store storage.Store, renderer render.Renderer) {
	fileStore = store
	certRenderer = renderer
	holidaySource = services.NewHolidayService()
}
