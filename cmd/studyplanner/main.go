package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studyplanner/internal/bootstrap"
	catalogdto "studyplanner/internal/modules/catalog/dto"
	plannerdto "studyplanner/internal/modules/planner/dto"
	"studyplanner/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "studyplanner",
		Short:         "University study plan manager",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.studyplanner)")

	root.AddCommand(newTUICmd(&configDir))
	root.AddCommand(newLoginCmd(&configDir))
	root.AddCommand(newRegisterCmd(&configDir))
	root.AddCommand(newLogoutCmd(&configDir))
	root.AddCommand(newWhoamiCmd(&configDir))
	root.AddCommand(newPlansCmd(&configDir))
	root.AddCommand(newSemesterCmd(&configDir))
	root.AddCommand(newCourseCmd(&configDir))
	root.AddCommand(newCatalogCmd(&configDir))
	root.AddCommand(newAdvisorCmd(&configDir))
	return root
}

func loadApp(configDir string) (*bootstrap.App, error) {
	cfg, err := config.New(configDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the studyplanner terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newLoginCmd(configDir *string) *cobra.Command {
	var email, password string
	login := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Log in against the user service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (user %s)\n", out.Email, out.UserID)
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "account email")
	login.Flags().StringVar(&password, "password", "", "account password")
	return login
}

func newRegisterCmd(configDir *string) *cobra.Command {
	var email, password string
	register := &cobra.Command{
		Use:   "register --email <email> --password <password>",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
				return fmt.Errorf("--email and --password are required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Register(context.Background(), email, password)
			if err != nil {
				return err
			}
			message := out.Message
			if message == "" {
				message = "registered " + out.Email
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	register.Flags().StringVar(&email, "email", "", "account email")
	register.Flags().StringVar(&password, "password", "", "account password")
	return register
}

func newLogoutCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newWhoamiCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in identity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.AuthCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "user: %s\nemail: %s\n", out.UserID, out.Email)
			if !out.ExpiresAt.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token expires: %s\n", out.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"))
			}
			return nil
		},
	}
}

func newPlansCmd(configDir *string) *cobra.Command {
	plans := &cobra.Command{Use: "plans", Short: "Manage study plans"}

	plans.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the user's study plans",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.PlansCLI.ListPlans(context.Background())
			if err != nil {
				return err
			}
			if len(out) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no plans")
				return nil
			}
			for _, p := range out {
				marker := " "
				if p.IsActive {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", marker, p.ID, p.Name, p.StudyProgramName)
			}
			return nil
		},
	})

	var createName, createProgramID string
	create := &cobra.Command{
		Use:   "create --name <name> --program-id <id>",
		Short: "Create a study plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(createName) == "" || strings.TrimSpace(createProgramID) == "" {
				return fmt.Errorf("--name and --program-id are required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.PlansCLI.CreatePlan(context.Background(), createName, createProgramID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", out.Name, out.ID)
			return nil
		},
	}
	create.Flags().StringVar(&createName, "name", "", "plan name")
	create.Flags().StringVar(&createProgramID, "program-id", "", "study program id")
	plans.AddCommand(create)

	var renameID, renameName string
	rename := &cobra.Command{
		Use:   "rename --id <id> --name <name>",
		Short: "Rename a study plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(renameID) == "" || strings.TrimSpace(renameName) == "" {
				return fmt.Errorf("--id and --name are required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.PlansCLI.RenamePlan(context.Background(), renameID, renameName)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "renamed %s to %q\n", out.ID, out.Name)
			return nil
		},
	}
	rename.Flags().StringVar(&renameID, "id", "", "plan id")
	rename.Flags().StringVar(&renameName, "name", "", "new plan name")
	plans.AddCommand(rename)

	var deleteID string
	deleteCmd := &cobra.Command{
		Use:   "delete --id <id>",
		Short: "Delete a study plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(deleteID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.PlansCLI.DeletePlan(context.Background(), deleteID); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", deleteID)
			return nil
		},
	}
	deleteCmd.Flags().StringVar(&deleteID, "id", "", "plan id")
	plans.AddCommand(deleteCmd)

	var showID string
	show := &cobra.Command{
		Use:   "show --id <id>",
		Short: "Show a plan's semesters and courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(showID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.OpenPlan(context.Background(), showID)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	show.Flags().StringVar(&showID, "id", "", "plan id")
	plans.AddCommand(show)

	return plans
}

func newSemesterCmd(configDir *string) *cobra.Command {
	semester := &cobra.Command{Use: "semester", Short: "Manage semesters of an open plan"}

	var planID string
	semester.PersistentFlags().StringVar(&planID, "plan-id", "", "study plan id")

	openPlanner := func() (*bootstrap.App, error) {
		if strings.TrimSpace(planID) == "" {
			return nil, fmt.Errorf("--plan-id is required")
		}
		app, err := loadApp(*configDir)
		if err != nil {
			return nil, err
		}
		if _, err := app.PlannerCLI.OpenPlan(context.Background(), planID); err != nil {
			return nil, err
		}
		return app, nil
	}

	semester.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Append the next semester to the plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.AddSemester(context.Background())
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	})

	start := &cobra.Command{
		Use:   "start <winter|summer>",
		Short: "Create the four starting semesters for an empty plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.CreateStartingBlock(context.Background(), args[0])
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	semester.AddCommand(start)

	var renameSemID, renameSemName string
	rename := &cobra.Command{
		Use:   "rename --id <id> --name <name>",
		Short: "Rename a semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(renameSemID) == "" || strings.TrimSpace(renameSemName) == "" {
				return fmt.Errorf("--id and --name are required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.RenameSemester(context.Background(), renameSemID, renameSemName)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	rename.Flags().StringVar(&renameSemID, "id", "", "semester id")
	rename.Flags().StringVar(&renameSemName, "name", "", "new semester name")
	semester.AddCommand(rename)

	var removeSemID string
	remove := &cobra.Command{
		Use:   "remove --id <id>",
		Short: "Remove a semester and its courses",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(removeSemID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.RemoveSemester(context.Background(), removeSemID)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	remove.Flags().StringVar(&removeSemID, "id", "", "semester id")
	semester.AddCommand(remove)

	return semester
}

func newCourseCmd(configDir *string) *cobra.Command {
	course := &cobra.Command{Use: "course", Short: "Manage courses of an open plan"}

	var planID string
	course.PersistentFlags().StringVar(&planID, "plan-id", "", "study plan id")

	openPlanner := func() (*bootstrap.App, error) {
		if strings.TrimSpace(planID) == "" {
			return nil, fmt.Errorf("--plan-id is required")
		}
		app, err := loadApp(*configDir)
		if err != nil {
			return nil, err
		}
		if _, err := app.PlannerCLI.OpenPlan(context.Background(), planID); err != nil {
			return nil, err
		}
		return app, nil
	}

	var addSemesterID, addModuleID string
	add := &cobra.Command{
		Use:   "add --semester-id <id> --module-id <id>",
		Short: "Add a catalog module to a semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(addSemesterID) == "" || strings.TrimSpace(addModuleID) == "" {
				return fmt.Errorf("--semester-id and --module-id are required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			module, err := app.CatalogCLI.ModuleByID(context.Background(), addModuleID)
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.AddCourse(context.Background(), plannerdto.AddCourseInput{
				SemesterID: addSemesterID,
				CourseID:   module.ModuleID,
				Name:       module.Name,
				Code:       module.ModuleID,
				Credits:    module.Credits,
				Professor:  module.Responsible,
				Occurrence: module.Occurrence,
				Category:   module.Category,
			})
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	add.Flags().StringVar(&addSemesterID, "semester-id", "", "target semester id")
	add.Flags().StringVar(&addModuleID, "module-id", "", "catalog module id, e.g. IN2003")
	course.AddCommand(add)

	var removeEntryID string
	remove := &cobra.Command{
		Use:   "remove --entry-id <id>",
		Short: "Remove a course from its semester",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(removeEntryID) == "" {
				return fmt.Errorf("--entry-id is required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.RemoveCourse(context.Background(), removeEntryID)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	remove.Flags().StringVar(&removeEntryID, "entry-id", "", "semester course entry id")
	course.AddCommand(remove)

	var toggleEntryID string
	toggle := &cobra.Command{
		Use:   "toggle --entry-id <id>",
		Short: "Toggle a course's completion state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(toggleEntryID) == "" {
				return fmt.Errorf("--entry-id is required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.ToggleCourse(context.Background(), toggleEntryID)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	toggle.Flags().StringVar(&toggleEntryID, "entry-id", "", "semester course entry id")
	course.AddCommand(toggle)

	var moveEntryID, moveTargetID string
	var moveIndex int
	move := &cobra.Command{
		Use:   "move --entry-id <id> --semester-id <id>",
		Short: "Move a course to another semester or position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(moveEntryID) == "" || strings.TrimSpace(moveTargetID) == "" {
				return fmt.Errorf("--entry-id and --semester-id are required")
			}
			app, err := openPlanner()
			if err != nil {
				return err
			}
			overview, err := app.PlannerCLI.MoveCourse(context.Background(), moveEntryID, moveTargetID, moveIndex)
			if err != nil {
				return err
			}
			printOverview(cmd, overview)
			return nil
		},
	}
	move.Flags().StringVar(&moveEntryID, "entry-id", "", "semester course entry id")
	move.Flags().StringVar(&moveTargetID, "semester-id", "", "target semester id")
	move.Flags().IntVar(&moveIndex, "index", -1, "position in the target semester (-1 appends)")
	course.AddCommand(move)

	return course
}

func newCatalogCmd(configDir *string) *cobra.Command {
	catalog := &cobra.Command{Use: "catalog", Short: "Browse the module catalog"}

	catalog.AddCommand(&cobra.Command{
		Use:   "programs",
		Short: "List study programs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			programs, err := app.CatalogCLI.ListPrograms(context.Background())
			if err != nil {
				return err
			}
			for _, p := range programs {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d ECTS\n", p.ID, p.Name, p.Degree, p.Credits)
			}
			return nil
		},
	})

	var overviewProgramID string
	overview := &cobra.Command{
		Use:   "overview --program-id <id>",
		Short: "Show a program's curriculum overview",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(overviewProgramID) == "" {
				return fmt.Errorf("--program-id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			out, err := app.CatalogCLI.Overview(context.Background(), overviewProgramID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d modules, %d ECTS\n", out.ProgramName, out.TotalModules, out.TotalCredits)
			for _, c := range out.Categories {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%d modules\t%d ECTS\n", c.Category, c.ModuleCount, c.TotalCredits)
			}
			return nil
		},
	}
	overview.Flags().StringVar(&overviewProgramID, "program-id", "", "study program id")
	catalog.AddCommand(overview)

	var categoriesProgramID, categoryName string
	categories := &cobra.Command{
		Use:   "categories --program-id <id>",
		Short: "List category statistics or one category's modules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(categoriesProgramID) == "" {
				return fmt.Errorf("--program-id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if strings.TrimSpace(categoryName) != "" {
				modules, err := app.CatalogCLI.CategorySummaries(context.Background(), categoriesProgramID, categoryName)
				if err != nil {
					return err
				}
				printModules(cmd, modules)
				return nil
			}
			stats, err := app.CatalogCLI.CategoryStats(context.Background(), categoriesProgramID)
			if err != nil {
				return err
			}
			for _, s := range stats {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d modules\t%d ECTS\n", s.Category, s.ModuleCount, s.TotalCredits)
			}
			return nil
		},
	}
	categories.Flags().StringVar(&categoriesProgramID, "program-id", "", "study program id")
	categories.Flags().StringVar(&categoryName, "category", "", "show this category's modules")
	catalog.AddCommand(categories)

	var searchInput catalogdto.SearchInput
	search := &cobra.Command{
		Use:   "search --program-id <id> [--term <text>]",
		Short: "Search modules with filters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(searchInput.StudyProgramID) == "" {
				return fmt.Errorf("--program-id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			modules, err := app.CatalogCLI.Search(context.Background(), searchInput)
			if err != nil {
				return err
			}
			printModules(cmd, modules)
			return nil
		},
	}
	search.Flags().StringVar(&searchInput.StudyProgramID, "program-id", "", "study program id")
	search.Flags().StringVar(&searchInput.SearchTerm, "term", "", "free-text search term")
	search.Flags().StringVar(&searchInput.Category, "category", "", "category filter")
	search.Flags().StringVar(&searchInput.Subcategory, "subcategory", "", "subcategory filter")
	search.Flags().StringVar(&searchInput.Language, "language", "", "language filter")
	search.Flags().StringVar(&searchInput.Occurrence, "occurrence", "", "occurrence filter")
	search.Flags().IntVar(&searchInput.MinCredits, "min-credits", 0, "minimum credits")
	search.Flags().IntVar(&searchInput.MaxCredits, "max-credits", 0, "maximum credits (0 = unbounded)")
	catalog.AddCommand(search)

	var moduleID string
	module := &cobra.Command{
		Use:   "module --id <module-id>",
		Short: "Show full module details",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(moduleID) == "" {
				return fmt.Errorf("--id is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			d, err := app.CatalogCLI.ModuleByID(context.Background(), moduleID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\ncredits: %d\ncategory: %s\nresponsible: %s\noccurrence: %s\nlanguage: %s\n",
				d.ModuleID, d.Name, d.Credits, d.Category, d.Responsible, d.Occurrence, d.Language)
			if strings.TrimSpace(d.Content) != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", d.Content)
			}
			return nil
		},
	}
	module.Flags().StringVar(&moduleID, "id", "", "module id, e.g. IN2003")
	catalog.AddCommand(module)

	return catalog
}

func newAdvisorCmd(configDir *string) *cobra.Command {
	advisor := &cobra.Command{Use: "advisor", Short: "Talk to the AI study advisor"}

	var askPlanID string
	ask := &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the advisor a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			session, err := app.AdvisorCLI.NewSession(context.Background(), askPlanID)
			if err != nil {
				return err
			}
			answer, err := app.AdvisorCLI.Ask(context.Background(), session.ID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), answer.Content)
			if len(answer.ModuleIDs) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "referenced modules: %s\n", strings.Join(answer.ModuleIDs, ", "))
			}
			return nil
		},
	}
	ask.Flags().StringVar(&askPlanID, "plan-id", "", "study plan to give the advisor as context")
	advisor.AddCommand(ask)

	var courseCode string
	course := &cobra.Command{
		Use:   "course --code <module-id>",
		Short: "Ask the advisor about one course",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(courseCode) == "" {
				return fmt.Errorf("--code is required")
			}
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			info, err := app.AdvisorCLI.CourseInfo(context.Background(), courseCode)
			if err != nil {
				return err
			}
			if info == nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "the advisor has no information about %q\n", courseCode)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\ncredits: %d\ncategory: %s\nresponsible: %s\ncertainty: %.2f\n",
				info.ModuleID, info.Name, info.Credits, info.Category, info.Responsible, info.Certainty)
			return nil
		},
	}
	course.Flags().StringVar(&courseCode, "code", "", "module id, e.g. IN2064")
	advisor.AddCommand(course)

	advisor.AddCommand(&cobra.Command{
		Use:   "health",
		Short: "Check the advisor service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configDir)
			if err != nil {
				return err
			}
			if err := app.AdvisorCLI.Health(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "advisor is healthy")
			return nil
		},
	})

	return advisor
}

func printOverview(cmd *cobra.Command, overview plannerdto.PlanOverview) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "plan %s: %d courses, %d/%d ECTS completed\n",
		overview.PlanID, overview.CourseCount, overview.CompletedCredits, overview.TotalCredits)
	for _, s := range overview.Semesters {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d ECTS\n", s.ID, s.Name, s.CompletedCredits, s.Credits)
		for _, c := range s.Courses {
			mark := " "
			if c.Completed {
				mark = "x"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s\t%s\t%s\t%d ECTS\n", mark, c.EntryID, c.Code, c.Name, c.Credits)
		}
	}
}

func printModules(cmd *cobra.Command, modules []catalogdto.ModuleSummaryOutput) {
	if len(modules) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no modules")
		return
	}
	for _, m := range modules {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d ECTS\t%s\t%s\n", m.ModuleID, m.Name, m.Credits, m.Category, m.Language)
	}
}
