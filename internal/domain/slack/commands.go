package slack

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

type CommandType string

const (
	CmdAdd      CommandType = "add"
	CmdRemove   CommandType = "remove"
	CmdDayOff   CommandType = "dayoff"
	CmdRotation CommandType = "rotation"
	CmdList     CommandType = "list"
	CmdGenerate CommandType = "generate"
	CmdPublish  CommandType = "publish"
	CmdPause    CommandType = "pause"
	CmdResume   CommandType = "resume"
	CmdStatus   CommandType = "status"
	CmdHelp     CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	if len(parts) > 1 {
		cmd.Args = parts[1:]
	}

	switch strings.ToLower(parts[0]) {
	case "add":
		cmd.Type = CmdAdd
	case "remove", "rm":
		cmd.Type = CmdRemove
	case "dayoff", "folga":
		cmd.Type = CmdDayOff
	case "rotation":
		cmd.Type = CmdRotation
	case "list", "ls":
		cmd.Type = CmdList
	case "generate", "gen":
		cmd.Type = CmdGenerate
	case "publish":
		cmd.Type = CmdPublish
	case "pause":
		cmd.Type = CmdPause
	case "resume":
		cmd.Type = CmdResume
	case "status":
		cmd.Type = CmdStatus
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// Tokenize splits text on whitespace, keeping double-quoted runs together.
// Slack sends smart quotes from some clients, so those count as quotes too.
func Tokenize(text string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		started bool
	)

	for _, r := range text {
		switch {
		case r == '"' || r == '“' || r == '”':
			quoted = !quoted
			started = true
		case unicode.IsSpace(r) && !quoted:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}

	if quoted {
		return nil, fmt.Errorf("unterminated quote in %q", text)
	}
	if started {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}

// ParseGroups reads a rotation written as "A,B;C,D": groups separated by
// semicolons, members by commas.
func ParseGroups(text string) ([][]string, error) {
	var groups [][]string
	for i, rawGroup := range strings.Split(text, ";") {
		var group []string
		for _, member := range strings.Split(rawGroup, ",") {
			member = strings.TrimSpace(member)
			if member != "" {
				group = append(group, member)
			}
		}
		if len(group) == 0 {
			return nil, fmt.Errorf("rotation group %d is empty", i+1)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// ParseMonth reads "YYYY-MM".
func ParseMonth(text string) (int, int, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(text))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, use YYYY-MM", text)
	}
	return t.Year(), int(t.Month()), nil
}

// ParseDayOff reads a roster weekday 0-6, or "none" to clear it.
func ParseDayOff(text string) (*int, error) {
	if strings.EqualFold(text, "none") || text == "-" {
		return nil, nil
	}
	day, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("invalid day off %q, use 0-6 (0=Mon ... 6=Sun) or none", text)
	}
	return &day, nil
}

func GetHelpText() string {
	return `*Available Commands:*

*Employees:*
• ` + "`/escala add NAME \"WEEKDAY SHIFT\" \"SUNDAY SHIFT\"`" + ` - Add employee (ex: add LEVI "10h às 18h" "14h às 20h")
• ` + "`/escala remove NAME`" + ` - Remove employee and drop them from rotations
• ` + "`/escala dayoff NAME 0-6|none`" + ` - Set fixed weekly day off (0=Mon, 1=Tue, 2=Wed, 3=Thu, 4=Fri, 5=Sat, 6=Sun)
• ` + "`/escala list`" + ` - List employees, shifts and rotations

*Rotations:*
• ` + "`/escala rotation sunday A,B;C,D`" + ` - Sunday rotation, groups separated by ;
• ` + "`/escala rotation vendor A;B,C`" + ` - Vendor rotation, groups separated by ;

*Schedule:*
• ` + "`/escala generate YYYY-MM`" + ` - Generate the schedule for a month

*Publishing:*
• ` + "`/escala publish DAY HH:MM`" + ` - Post next month's schedule on DAY (1-28) at HH:MM UTC
• ` + "`/escala pause`" + ` - Pause automatic publishing
• ` + "`/escala resume`" + ` - Resume automatic publishing
• ` + "`/escala status`" + ` - Show roster status for this channel`
}
