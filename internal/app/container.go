package app

import (
	"context"
	"time"

	"fairchance-board/internal/config"
	"fairchance-board/internal/database"
	dbpostgres "fairchance-board/internal/database/postgres"
	"fairchance-board/internal/delivery/http/handler"
	"fairchance-board/internal/delivery/http/routes"
	"fairchance-board/internal/repository"
	"fairchance-board/internal/usecase"

	"go.uber.org/zap"
)

// Container holds the usecases built on one store handle.
type Container struct {
	JobList    *usecase.JobList
	JobUC      *usecase.Job
	EmployerUC *usecase.Employer
}

func ConnectDB(cfg config.Config) (database.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return dbpostgres.Connect(ctx, cfg.Database)
}

func NewContainer(db database.DB, logger *zap.Logger) *Container {
	jobs := repository.NewPostgresJobRepository(db)
	employers := repository.NewPostgresEmployerRepository(db)

	return &Container{
		JobList:    usecase.NewJobListUsecase(jobs, employers, logger.Named("jobs")),
		JobUC:      usecase.NewJobUsecase(jobs, employers, logger.Named("jobs")),
		EmployerUC: usecase.NewEmployerUsecase(employers, logger.Named("employers")),
	}
}

func (c *Container) Registry() *routes.Registry {
	return routes.NewRegistry(
		handler.NewJobsHandler(c.JobList, c.JobUC),
		handler.NewEmployersHandler(c.EmployerUC, c.JobList),
		handler.NewAdminHandler(c.JobList, c.JobUC, c.EmployerUC),
	)
}
