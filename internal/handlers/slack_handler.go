package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain"
	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	slackcmd "github.com/diegoclair/escala-bot/internal/domain/slack"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type SlackHandler struct {
	rosterService   contract.RosterService
	scheduleService contract.ScheduleService
	signingSecret   string
	log             *zap.Logger
}

func New(rosterService contract.RosterService, scheduleService contract.ScheduleService, signingSecret string, log *zap.Logger) *SlackHandler {
	return &SlackHandler{
		rosterService:   rosterService,
		scheduleService: scheduleService,
		signingSecret:   signingSecret,
		log:             log,
	}
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn("rejected slash command", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn("invalid slack signature", zap.Error(err))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respond(w, h.createErrorResponse(err.Error()))
		return
	}

	h.log.Debug("slash command",
		zap.String("channel", s.ChannelID),
		zap.String("user", s.UserID),
		zap.String("command", string(cmd.Type)),
	)

	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}

	roster, _, err := h.rosterService.SetupRoster(slashCmd.ChannelID, slashCmd.ChannelName)
	if err != nil {
		h.log.Error("failed to set up roster", zap.String("channel", slashCmd.ChannelID), zap.Error(err))
		return h.createErrorResponse("Error checking roster for this channel")
	}

	switch cmd.Type {
	case slackcmd.CmdAdd:
		return h.handleAdd(ctx, cmd, roster)
	case slackcmd.CmdRemove:
		return h.handleRemove(ctx, cmd, roster)
	case slackcmd.CmdDayOff:
		return h.handleDayOff(cmd, roster)
	case slackcmd.CmdRotation:
		return h.handleRotation(cmd, roster)
	case slackcmd.CmdList:
		return h.handleList(roster)
	case slackcmd.CmdGenerate:
		return h.handleGenerate(ctx, cmd, roster)
	case slackcmd.CmdPublish:
		return h.handlePublish(cmd, roster)
	case slackcmd.CmdPause:
		return h.handlePause(roster)
	case slackcmd.CmdResume:
		return h.handleResume(roster)
	case slackcmd.CmdStatus:
		return h.handleStatus(roster)
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

func (h *SlackHandler) handleAdd(ctx context.Context, cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) != 3 {
		return h.createErrorResponse("Usage: `/escala add NAME \"WEEKDAY SHIFT\" \"SUNDAY SHIFT\"`")
	}

	name, weekday, sunday := cmd.Args[0], cmd.Args[1], cmd.Args[2]
	if err := h.rosterService.AddEmployee(ctx, roster.ID, name, weekday, sunday); err != nil {
		return h.errorResponse(err, "Error adding employee")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ *%s* added to the roster (weekdays: %s, sundays: %s)",
			strings.ToUpper(strings.TrimSpace(name)), weekday, sunday),
	}
}

func (h *SlackHandler) handleRemove(ctx context.Context, cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Usage: `/escala remove NAME`")
	}

	if err := h.rosterService.RemoveEmployee(ctx, roster.ID, cmd.Args[0]); err != nil {
		return h.errorResponse(err, "Error removing employee")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ *%s* removed from the roster and its rotations", strings.ToUpper(strings.TrimSpace(cmd.Args[0]))),
	}
}

func (h *SlackHandler) handleDayOff(cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) != 2 {
		return h.createErrorResponse("Usage: `/escala dayoff NAME 0-6|none` (0=Mon ... 6=Sun)")
	}

	day, err := slackcmd.ParseDayOff(cmd.Args[1])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rosterService.SetDayOff(roster.ID, cmd.Args[0], day); err != nil {
		return h.errorResponse(err, "Error setting day off")
	}

	name := strings.ToUpper(strings.TrimSpace(cmd.Args[0]))
	text := fmt.Sprintf("✅ *%s* has no fixed day off", name)
	if day != nil {
		text = fmt.Sprintf("✅ *%s* is off every %s", name, domain.WeekdayNames[*day])
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) handleRotation(cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Usage: `/escala rotation sunday|vendor A,B;C,D`")
	}

	kind := strings.ToLower(cmd.Args[0])
	groups, err := slackcmd.ParseGroups(strings.Join(cmd.Args[1:], " "))
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	if err := h.rosterService.SetRotation(roster.ID, kind, groups); err != nil {
		return h.errorResponse(err, "Error updating rotation")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ %s rotation updated: %s", kind, formatGroups(groups)),
	}
}

func (h *SlackHandler) handleList(roster *entity.Roster) *slack.Msg {
	employees, err := h.rosterService.ListEmployees(roster.ID)
	if err != nil {
		return h.errorResponse(err, "Error listing employees")
	}

	if len(employees) == 0 {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No employees in this roster. Use `/escala add NAME \"WEEKDAY SHIFT\" \"SUNDAY SHIFT\"` to add one.",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Roster %s:*\n", roster.Name)
	for i, e := range employees {
		fmt.Fprintf(&b, "%d. *%s* - weekdays %s, sundays %s", i+1, e.Name, e.WeekdayShift, e.SundayShift)
		if e.DayOff != nil {
			fmt.Fprintf(&b, ", off %s", domain.WeekdayNames[*e.DayOff])
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\n*Sunday rotation:* %s", formatGroups(roster.SundayRotation))
	fmt.Fprintf(&b, "\n*Vendor rotation:* %s", formatGroups(roster.VendorRotation))

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleGenerate(ctx context.Context, cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) != 1 {
		return h.createErrorResponse("Usage: `/escala generate YYYY-MM`")
	}

	year, month, err := slackcmd.ParseMonth(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(err.Error())
	}

	result, err := h.scheduleService.GenerateSchedule(ctx, roster.ID, year, month)
	if err != nil {
		return h.errorResponse(err, "Error generating schedule")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: export.Summary(result.RosterName, result.Grid, result.Stats) +
			fmt.Sprintf("\n\nSpreadsheet: `%s`", result.FilePath),
	}
}

func (h *SlackHandler) handlePublish(cmd *slackcmd.Command, roster *entity.Roster) *slack.Msg {
	if len(cmd.Args) != 2 {
		return h.createErrorResponse("Usage: `/escala publish DAY HH:MM` (day 1-28, time in UTC)")
	}

	day, err := strconv.Atoi(cmd.Args[0])
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid day %q, use 1-28", cmd.Args[0]))
	}

	if err := h.rosterService.UpdatePublisher(roster.ID, day, cmd.Args[1]); err != nil {
		return h.errorResponse(err, "Error updating publishing")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Next month's schedule will be posted on day %d at %s UTC", day, cmd.Args[1]),
	}
}

func (h *SlackHandler) handlePause(roster *entity.Roster) *slack.Msg {
	if err := h.rosterService.PausePublisher(roster.ID); err != nil {
		return h.errorResponse(err, "Error pausing publishing")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "⏸️ Automatic publishing paused. Use `/escala resume` to turn it back on.",
	}
}

func (h *SlackHandler) handleResume(roster *entity.Roster) *slack.Msg {
	if err := h.rosterService.ResumePublisher(roster.ID); err != nil {
		return h.errorResponse(err, "Error resuming publishing")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         "▶️ Automatic publishing resumed.",
	}
}

func (h *SlackHandler) handleStatus(roster *entity.Roster) *slack.Msg {
	employees, err := h.rosterService.ListEmployees(roster.ID)
	if err != nil {
		return h.errorResponse(err, "Error checking status")
	}

	publisher, err := h.rosterService.GetPublisher(roster.ID)
	if err != nil {
		return h.errorResponse(err, "Error checking status")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Roster %s*\n", roster.Name)
	fmt.Fprintf(&b, "• Employees: %d\n", len(employees))
	fmt.Fprintf(&b, "• Sunday rotation groups: %d\n", len(roster.SundayRotation))
	fmt.Fprintf(&b, "• Vendor rotation groups: %d\n", len(roster.VendorRotation))

	switch {
	case publisher == nil:
		b.WriteString("• Publishing: not configured")
	case publisher.IsEnabled:
		fmt.Fprintf(&b, "• Publishing: ✅ day %d at %s UTC", publisher.PublishDay, publisher.PublishTime)
	default:
		fmt.Fprintf(&b, "• Publishing: ⏸️ paused (day %d at %s UTC)", publisher.PublishDay, publisher.PublishTime)
	}

	if rules, err := h.rosterService.RuleSet(roster.ID); err == nil {
		if err := rules.Validate(); err != nil {
			fmt.Fprintf(&b, "\n\n⚠️ Roster is not ready to generate: %v", err)
		}
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         b.String(),
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// errorResponse shows domain errors to the user as they are and hides
// everything else behind fallback.
func (h *SlackHandler) errorResponse(err error, fallback string) *slack.Msg {
	switch {
	case errors.Is(err, domain.ErrEmployeeExists),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrRosterNotFound),
		errors.Is(err, domain.ErrInvalidPublisher),
		errors.Is(err, schedule.ErrConfiguration),
		errors.Is(err, schedule.ErrReference),
		errors.Is(err, schedule.ErrRange):
		return h.createErrorResponse(err.Error())
	}

	h.log.Error(fallback, zap.Error(err))
	return h.createErrorResponse(fallback)
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		h.log.Error("failed to encode slack response", zap.Error(err))
	}
}

// HandleHealth answers liveness probes.
func HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func formatGroups(groups [][]string) string {
	if len(groups) == 0 {
		return "_not set_"
	}
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = strings.Join(g, ", ")
	}
	return strings.Join(parts, " → ")
}
