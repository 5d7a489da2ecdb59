package goal

import "gorm.io/gorm"

type Container struct {
	Handler     *Handler
	ViewHandler *ViewHandler
	Service     Service
}

func NewContainer(db *gorm.DB) *Container {
	repo := NewRepository(db)
	service := NewService(repo)

	return &Container{
		Handler:     NewHandler(service),
		ViewHandler: NewViewHandler(service),
		Service:     service,
	}
}
