package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"delivery-matching/internal/config"
	"delivery-matching/internal/gateway/routing"
	"delivery-matching/internal/logx"
	"delivery-matching/internal/repository"
	"delivery-matching/internal/service/assignment"
	"delivery-matching/internal/service/matching"
)

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewDriverRepo,
		repository.NewOrderRepo,
		repository.NewRejectionRepo,
		provideAssignment,
		provideEnricher,
		provideMatching,
	)
}

type assignmentIn struct {
	dig.In

	Drivers    *repository.DriverRepo
	Orders     *repository.OrderRepo
	Rejections *repository.RejectionRepo
	Publisher  assignment.Publisher `optional:"true"`
	Actions    *prometheus.CounterVec
	Logger     logx.Logger
}

func provideAssignment(in assignmentIn) *assignment.Processor {
	return assignment.NewProcessor(in.Drivers, in.Orders, in.Rejections, in.Publisher, in.Actions, in.Logger)
}

type enricherIn struct {
	dig.In

	Config    *config.Config
	Estimator routing.Estimator  `optional:"true"`
	Failures  prometheus.Counter `name:"travel_time_failures_total"`
	Logger    logx.Logger
}

func provideEnricher(in enricherIn) *matching.Enricher {
	return matching.NewEnricher(in.Estimator, in.Config.Routing.CallTimeout, in.Failures, in.Logger)
}

type matchingIn struct {
	dig.In

	Config     *config.Config
	Drivers    *repository.DriverRepo
	Orders     *repository.OrderRepo
	Actions    *assignment.Processor
	Enricher   *matching.Enricher
	Candidates prometheus.Histogram
	Logger     logx.Logger
}

func provideMatching(in matchingIn) *matching.Service {
	m := in.Config.Matching
	cfg := matching.Config{
		Radius: matching.RadiusPolicy{
			DefaultKm: m.DefaultRadiusKm,
			MinKm:     m.MinRadiusKm,
			MaxKm:     m.MaxRadiusKm,
		},
		OperationTimeout: m.OperationTimeout,
	}
	return matching.NewService(in.Drivers, in.Orders, in.Actions, in.Enricher, cfg, in.Candidates, in.Logger)
}
