package service

import (
	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/export"
	"go.uber.org/zap"
)

type Instance struct {
	Roster    *rosterService
	Schedule  *scheduleService
	Publisher *publisher
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, exporter *export.Exporter, outputDir string, log *zap.Logger) *Instance {
	rosterService := newRoster(dm, log)
	scheduleService := newSchedule(rosterService, exporter, outputDir, log)
	pub := newPublisher(dm, scheduleService, slackClient, log)
	rosterService.SetPublisher(pub)

	return &Instance{
		Roster:    rosterService,
		Schedule:  scheduleService,
		Publisher: pub,
	}
}
