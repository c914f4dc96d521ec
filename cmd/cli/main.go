package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"quick-event/config"
	"quick-event/internal/event"
	eventUC "quick-event/internal/event/usecase"
	"quick-event/pkg/datemath"
	"quick-event/pkg/gcalendar"
	"quick-event/pkg/log"
)

// quick-event CLI: one-shot parse of a quick-add query.
//
//	quick-event "Dinner tomorrow at 7 with Mom for 2h in Backyard"
//	quick-event -profile work "Standup from 9a to 9:15a"
//	quick-event -create "Dentist on may 2nd at 10a"
//
// A leading profile keyword (event / wevent / oevent by default) also picks
// the profile, mirroring launcher-style invocation.
func main() {
	profileFlag := flag.String("profile", "", "calendar profile: personal, work or other")
	create := flag.Bool("create", false, "insert through the Calendar API instead of printing a link")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: quick-event [-profile personal|work|other] [-create] <query>")
		os.Exit(2)
	}
	query := strings.Join(flag.Args(), " ")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	// Keep the terminal clean; errors still surface.
	logger := log.Init(log.ZapConfig{Level: "error", Mode: cfg.Logger.Mode, Encoding: "console"})
	ctx := context.Background()

	profile := event.Profile(*profileFlag)
	if profile == "" {
		profile, query = profileFromKeyword(cfg.Profiles, query)
	}

	parser, err := datemath.NewParser(cfg.Parser.Timezone)
	if err != nil {
		parser, _ = datemath.NewParser("UTC")
	}

	var calendarClient eventUC.CalendarClient
	if *create {
		if cfg.GoogleCalendar.CredentialsPath == "" {
			fmt.Fprintln(os.Stderr, "-create requires google_calendar.credentials_path in config")
			os.Exit(1)
		}
		client, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			fmt.Fprintln(os.Stderr, "calendar client:", calErr)
			os.Exit(1)
		}
		calendarClient = client
	}

	uc := eventUC.New(logger, parser, calendarClient, eventUC.Config{
		Timezone:               parser.Location().String(),
		DefaultDurationMinutes: cfg.Parser.DefaultDurationMinutes,
		Aliases:                event.ParseAliases(cfg.Parser.GuestAliases),
		Targets: map[event.Profile]eventUC.ProfileTarget{
			event.ProfilePersonal: {BaseURL: cfg.Profiles.Personal.BaseURL, Src: cfg.Profiles.Personal.Src},
			event.ProfileWork:     {BaseURL: cfg.Profiles.Work.BaseURL, Src: cfg.Profiles.Work.Src},
			event.ProfileOther:    {BaseURL: cfg.Profiles.Other.BaseURL, Src: cfg.Profiles.Other.Src},
		},
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	input := event.ParseInput{Query: query, Profile: profile}

	if *create {
		out, createErr := uc.Create(ctx, input)
		if createErr != nil {
			fmt.Fprintln(os.Stderr, "create:", createErr)
			os.Exit(1)
		}
		fmt.Println(out.Parsed.Summary)
		fmt.Println(out.Parsed.Description)
		fmt.Println(out.Link)
		return
	}

	out, parseErr := uc.Parse(ctx, input)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, "parse:", parseErr)
		os.Exit(1)
	}
	fmt.Println(out.Summary)
	fmt.Println(out.Description)
	fmt.Println(out.URL)
}

// profileFromKeyword strips a leading profile keyword from the query and
// returns the matching profile; without one the personal profile applies.
func profileFromKeyword(profiles config.ProfilesConfig, query string) (event.Profile, string) {
	first, rest, _ := strings.Cut(strings.TrimSpace(query), " ")
	switch strings.ToLower(first) {
	case strings.ToLower(profiles.Personal.Keyword):
		return event.ProfilePersonal, strings.TrimSpace(rest)
	case strings.ToLower(profiles.Work.Keyword):
		return event.ProfileWork, strings.TrimSpace(rest)
	case strings.ToLower(profiles.Other.Keyword):
		return event.ProfileOther, strings.TrimSpace(rest)
	default:
		return event.ProfilePersonal, query
	}
}
