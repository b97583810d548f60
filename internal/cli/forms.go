package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/cli/formatter"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/series"
)

// plannerHuhTheme returns a huh theme using the formatter palette.
func plannerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// eventInput is the editable state of the event form.
type eventInput struct {
	Title    string
	Date     string
	Time     string
	Type     string
	Repeat   string
	Until    string
	Interval string
}

func eventTypeOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.EventTypes))
	for _, t := range domain.EventTypes {
		opts = append(opts, huh.NewOption(t.Label(), string(t)))
	}
	return opts
}

func repeatOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.RepeatModes))
	for _, m := range domain.RepeatModes {
		opts = append(opts, huh.NewOption(m.Label(), string(m)))
	}
	return opts
}

// eventForm collects a new event. The repeat group is skipped for single
// events and the interval field only shows for custom repeats.
func eventForm(in *eventInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("标题 Title").Value(&in.Title).Validate(validateRequired),
			huh.NewInput().Title("日期 Date (YYYY-MM-DD)").Value(&in.Date).Validate(validateDateKey),
			huh.NewInput().Title("时间 Time (HH:MM, blank for all day)").Value(&in.Time).Validate(validateOptionalClock),
			huh.NewSelect[string]().Title("类型 Type").Options(eventTypeOptions()...).Value(&in.Type),
			huh.NewSelect[string]().Title("重复 Repeat").Options(repeatOptions()...).Value(&in.Repeat),
		),
		huh.NewGroup(
			huh.NewInput().Title("结束日期 Until (YYYY-MM-DD)").Value(&in.Until).Validate(validateDateKey),
		).WithHideFunc(func() bool { return in.Repeat == string(domain.RepeatSingle) }),
		huh.NewGroup(
			huh.NewInput().Title("间隔天数 Every N days").Value(&in.Interval).Validate(validateInterval),
		).WithHideFunc(func() bool { return in.Repeat != string(domain.RepeatCustom) }),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}

// editForm collects new details for an existing event.
func editForm(in *eventInput, applyToSeries *bool, inSeries bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("标题 Title").Value(&in.Title).Validate(validateRequired),
			huh.NewInput().Title("时间 Time (HH:MM, blank for all day)").Value(&in.Time).Validate(validateOptionalClock),
			huh.NewSelect[string]().Title("类型 Type").Options(eventTypeOptions()...).Value(&in.Type),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Apply to the whole series?").Affirmative("Series").Negative("Only this").Value(applyToSeries),
		).WithHideFunc(func() bool { return !inSeries }),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(plannerHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDateKey(s string) error {
	if !calendar.ValidDateKey(domain.DateKey(s)) {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateOptionalClock(s string) error {
	if s == "" {
		return nil
	}
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

func validateInterval(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < series.MinCustomInterval {
		return fmt.Errorf("enter a number of at least %d", series.MinCustomInterval)
	}
	return nil
}
