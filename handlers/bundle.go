package handlers

// HandlerBundle groups all endpoint handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Booking *BookingHandler
	Catalog *CatalogHandler
	Photo   *PhotoHandler
	Auth    *AuthHandler
}
