package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// cooldown after a publication so the same minute is not processed twice
const publishCooldown = time.Minute

// publisher posts next month's schedule to each roster channel on the
// configured day of the month.
type publisher struct {
	dm            contract.DataManager
	schedule      contract.ScheduleService
	slackClient   contract.SlackClient
	log           *zap.Logger
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
	now           func() time.Time
}

func newPublisher(dm contract.DataManager, schedule contract.ScheduleService, slackClient contract.SlackClient, log *zap.Logger) *publisher {
	return &publisher{
		dm:            dm,
		schedule:      schedule,
		slackClient:   slackClient,
		log:           log,
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (p *publisher) Start() {
	if p.running {
		return
	}
	p.running = true
	p.log.Info("publisher starting")
	go p.mainLoop()
}

func (p *publisher) Stop() {
	if !p.running {
		return
	}
	p.log.Info("publisher stopping")
	close(p.stopChan)
	p.running = false
}

func (p *publisher) NotifyConfigChange() {
	// Non-blocking send to config change channel
	select {
	case p.configChanged <- struct{}{}:
	default:
		// Channel is full, loop will recalculate anyway
	}
}

func (p *publisher) mainLoop() {
	for {
		nextTime, rosterIDs := p.findNextPublication()

		wait := time.Hour
		if len(rosterIDs) > 0 {
			wait = nextTime.Sub(p.now())
			p.log.Info("next publication scheduled",
				zap.Time("at", nextTime),
				zap.Int("rosters", len(rosterIDs)),
			)
		} else {
			p.log.Debug("no enabled publishers, waiting 1 hour")
		}

		if wait <= 0 {
			p.publishAll(context.Background(), nextTime, rosterIDs)
			if !p.sleep(publishCooldown) {
				return
			}
			continue
		}

		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
			if len(rosterIDs) > 0 {
				p.publishAll(context.Background(), nextTime, rosterIDs)
				if !p.sleep(publishCooldown) {
					return
				}
			}

		case <-p.configChanged:
			timer.Stop()
			p.log.Debug("configuration changed, recalculating")

		case <-p.stopChan:
			timer.Stop()
			return
		}
	}
}

// sleep waits for d and reports false when the publisher was stopped meanwhile.
func (p *publisher) sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-p.stopChan:
		return false
	}
}

func (p *publisher) findNextPublication() (time.Time, []int64) {
	publishers, err := p.dm.Publisher().GetEnabled()
	if err != nil {
		p.log.Error("failed to get enabled publishers", zap.Error(err))
		return time.Time{}, nil
	}

	if len(publishers) == 0 {
		return time.Time{}, nil
	}

	now := p.now()

	type rosterNext struct {
		rosterID int64
		nextTime time.Time
	}

	var allNext []rosterNext
	for _, pub := range publishers {
		nextTime := p.calculateNextForPublisher(pub, now)
		if !nextTime.IsZero() {
			allNext = append(allNext, rosterNext{rosterID: pub.RosterID, nextTime: nextTime})
		}
	}

	if len(allNext) == 0 {
		return time.Time{}, nil
	}

	sort.Slice(allNext, func(i, j int) bool {
		return allNext[i].nextTime.Before(allNext[j].nextTime)
	})

	earliest := allNext[0].nextTime

	// Collect every roster due at the earliest time
	var rosterIDs []int64
	for _, rn := range allNext {
		if !rn.nextTime.Equal(earliest) {
			break
		}
		rosterIDs = append(rosterIDs, rn.rosterID)
	}

	return earliest, rosterIDs
}

// calculateNextForPublisher returns the first publish instant strictly
// after now, or zero time when the config is unusable.
func (p *publisher) calculateNextForPublisher(pub *entity.Publisher, now time.Time) time.Time {
	parts := strings.Split(pub.PublishTime, ":")
	if len(parts) != 2 {
		p.log.Warn("invalid publish time", zap.Int64("publisher_id", pub.ID), zap.String("time", pub.PublishTime))
		return time.Time{}
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		p.log.Warn("invalid publish hour", zap.Int64("publisher_id", pub.ID), zap.String("hour", parts[0]))
		return time.Time{}
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		p.log.Warn("invalid publish minute", zap.Int64("publisher_id", pub.ID), zap.String("minute", parts[1]))
		return time.Time{}
	}

	if pub.PublishDay < 1 || pub.PublishDay > 28 {
		p.log.Warn("invalid publish day", zap.Int64("publisher_id", pub.ID), zap.Int("day", pub.PublishDay))
		return time.Time{}
	}

	now = now.UTC()
	candidate := time.Date(now.Year(), now.Month(), pub.PublishDay, hour, minute, 0, 0, time.UTC)
	if !candidate.After(now) {
		candidate = candidate.AddDate(0, 1, 0)
	}

	return candidate
}

// targetMonth is the month a publication at t covers: the following one.
func targetMonth(t time.Time) (int, int) {
	next := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return next.Year(), int(next.Month())
}

func (p *publisher) publishAll(ctx context.Context, at time.Time, rosterIDs []int64) {
	for _, rosterID := range rosterIDs {
		if err := p.publishRoster(ctx, at, rosterID); err != nil {
			p.log.Error("failed to publish schedule", zap.Int64("roster_id", rosterID), zap.Error(err))
		}
	}
}

func (p *publisher) publishRoster(ctx context.Context, at time.Time, rosterID int64) error {
	roster, err := p.dm.Roster().GetByID(rosterID)
	if err != nil {
		return fmt.Errorf("failed to get roster: %w", err)
	}

	if roster == nil {
		return fmt.Errorf("roster %d not found", rosterID)
	}

	year, month := targetMonth(at)
	result, err := p.schedule.GenerateSchedule(ctx, rosterID, year, month)
	if err != nil {
		// Tell the channel; a broken roster should not fail silently every month
		message := fmt.Sprintf("🤖 *Escala*\n\nCould not generate the schedule for %s %d: %v",
			time.Month(month), year, err)
		if _, _, postErr := p.slackClient.PostMessage(
			roster.SlackChannelID,
			slack.MsgOptionText(message, false),
			slack.MsgOptionAsUser(false),
		); postErr != nil {
			p.log.Error("failed to report publish error", zap.Error(postErr))
		}
		return err
	}

	message := export.Summary(result.RosterName, result.Grid, result.Stats) +
		fmt.Sprintf("\n\nSpreadsheet: `%s`", result.FilePath)

	_, _, err = p.slackClient.PostMessage(
		roster.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	p.log.Info("schedule published", zap.String("channel", roster.SlackChannelID), zap.Int("year", year), zap.Int("month", month))
	return nil
}
