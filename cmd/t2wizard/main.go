package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync/atomic"

	"t2wizard/internal/catalog"
	"t2wizard/internal/events"
	"t2wizard/internal/format"
	"t2wizard/internal/mapping"
	"t2wizard/internal/model"
	"t2wizard/internal/store"
	"t2wizard/internal/tui"
	"t2wizard/internal/wizard"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runRun(os.Args[2:])
	case "status":
		runStatus(os.Args[2:])
	case "export":
		runExport(os.Args[2:])
	case "reset":
		runReset(os.Args[2:])
	case "version":
		fmt.Printf("t2wizard %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`t2wizard - guided T2 return and T5 slip preparation

Usage:
  t2wizard run [--dir <state-dir>]      Start or resume the questionnaire
  t2wizard status [--dir <state-dir>]   Show session progress
  t2wizard export [--json] [--dir ...]  Print the form-line mapping (or T5 slip JSON)
  t2wizard reset [--dir <state-dir>]    Discard the saved session
  t2wizard version                      Print version
  t2wizard help                         Show this help`)
}

// parseDir pulls --dir out of args, falling back to the configured default.
func parseDir(args []string) (string, []string) {
	cfg := loadConfig()
	rest := make([]string, 0, len(args))
	dir := cfg.StateDir
	for i := 0; i < len(args); i++ {
		if args[i] == "--dir" && i+1 < len(args) {
			dir = args[i+1]
			i++
			continue
		}
		rest = append(rest, args[i])
	}
	return dir, rest
}

func loadConfig() model.Config {
	path := os.Getenv("T2WIZARD_CONFIG")
	cfg, err := model.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if err := format.SetLocale(cfg.Locale); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v (keeping en-CA)\n", err)
	}
	return cfg
}

func openEngine(dir string) (*wizard.Engine, *store.Store, *events.AuditLogger) {
	st, err := store.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()
	var audit *events.AuditLogger
	if cfg.Audit.Enabled {
		audit, err = events.NewAuditLogger(cfg.Audit.Path, 0)
		if err != nil {
			fmt.Fprintf(os.Stderr, "audit log: %v\n", err)
			os.Exit(1)
		}
	}

	var auditor wizard.Auditor
	if audit != nil {
		auditor = audit
	}
	engine, err := wizard.NewEngine(st, auditor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	return engine, st, audit
}

func runStatus(args []string) {
	dir, _ := parseDir(args)
	engine, st, audit := openEngine(dir)
	defer closeAll(st, audit)

	snap := engine.Snapshot()
	active := engine.Active()
	fmt.Printf("state file:      %s\n", st.Path())
	fmt.Printf("phase:           %s\n", engine.Phase())
	fmt.Printf("answered fields: %d\n", len(snap.Answers))
	fmt.Printf("cca items:       %d\n", len(snap.CCAItems))
	fmt.Printf("step:            %d of %d (%s)\n", engine.Cursor()+1, len(active), engine.Current().ID)
	fmt.Printf("progress:        %.0f%%\n", engine.Progress()*100)
}

func runExport(args []string) {
	dir, rest := parseDir(args)
	asJSON := false
	for _, a := range rest {
		if a == "--json" {
			asJSON = true
		}
	}

	engine, st, audit := openEngine(dir)
	defer closeAll(st, audit)

	if !engine.Completed() {
		fmt.Fprintln(os.Stderr, "error: session is not complete; finish the questionnaire with `t2wizard run` first")
		os.Exit(1)
	}

	snap := engine.Snapshot()
	records := mapping.Project(catalog.Steps(), snap)
	if asJSON {
		data, err := mapping.T5JSON(records)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
		return
	}

	r := tui.New(os.Stdout)
	r.Records(records)
	r.Schedules(mapping.RequiredSchedules(snap.Answers))
}

func runReset(args []string) {
	dir, _ := parseDir(args)
	engine, st, audit := openEngine(dir)
	defer closeAll(st, audit)

	if err := engine.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("session cleared")
}

func runRun(args []string) {
	dir, _ := parseDir(args)
	engine, st, audit := openEngine(dir)
	defer closeAll(st, audit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An external edit of the state file (another tool, a restore) flips
	// staleReload; the loop re-reads before the next prompt.
	var staleReload atomic.Bool
	if changes, err := st.Watch(ctx); err == nil {
		go func() {
			for range changes {
				staleReload.Store(true)
			}
		}()
	}

	r := tui.New(os.Stdout)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("T2 return preparation — :back to go back, :reset to start over, :quit to exit")
	for {
		if staleReload.Swap(false) {
			fresh, err := wizard.NewEngine(st, auditorOf(audit))
			if err == nil {
				engine = fresh
				fmt.Println("(state file changed on disk; session reloaded)")
			}
		}

		if engine.Completed() {
			finish(r, engine)
			fmt.Print("\n:edit to revise answers, Enter to exit > ")
			if !in.Scan() {
				return
			}
			if strings.TrimSpace(in.Text()) != ":edit" {
				return
			}
			if err := engine.BackToEdit(); err != nil {
				r.Error(err.Error())
				return
			}
			continue
		}

		active := engine.Active()
		step := engine.Current()
		r.Step(step, engine.Snapshot().Answers, engine.Cursor(), len(active))
		r.Preview(engine.Preview())

		if !prompt(r, in, engine, step) {
			return
		}
	}
}

func auditorOf(audit *events.AuditLogger) wizard.Auditor {
	if audit == nil {
		return nil
	}
	return audit
}

// prompt reads one user action for the current step. Returns false to quit.
func prompt(r *tui.Renderer, in *bufio.Scanner, engine *wizard.Engine, step catalog.Step) bool {
	fmt.Print("> ")
	if !in.Scan() {
		return false
	}
	line := strings.TrimSpace(in.Text())

	switch line {
	case ":quit":
		return false
	case ":back":
		engine.Retreat()
		return true
	case ":reset":
		if err := engine.Reset(); err != nil {
			r.Error(err.Error())
		}
		return true
	}

	var err error
	switch step.FieldType {
	case catalog.FieldCompositeAddress:
		err = readAddress(in, engine, step.ID, line)
	case catalog.FieldCompositeCompanyAddress:
		err = readCompanyAddress(in, engine, step.ID, line)
	case catalog.FieldCCASchedule:
		if line == "add" {
			if err := readCCA(in, engine); err != nil {
				r.Error(err.Error())
			}
			// Stay on the step so more classes can be added.
			return true
		}
	case catalog.FieldCheckboxes:
		err = applyCheckboxes(engine, step, line)
	case catalog.FieldRadio, catalog.FieldSelect:
		err = applyOption(engine, step, line)
	case catalog.FieldReview, catalog.FieldReviewT5:
		// Enter confirms.
	default:
		if line != "" {
			err = engine.Apply(step.ID, line)
		}
	}
	if err != nil {
		r.Error(err.Error())
		return true
	}

	if err := engine.Advance(); err != nil {
		r.Error(validationMessage(err))
	}
	return true
}

func validationMessage(err error) string {
	if verr, ok := err.(*wizard.ValidationError); ok {
		return verr.Message
	}
	return err.Error()
}

// applyOption accepts either a 1-based menu number or a literal value.
func applyOption(engine *wizard.Engine, step catalog.Step, line string) error {
	if line == "" {
		return nil
	}
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(step.Options) {
		return engine.Apply(step.ID, step.Options[n-1].Value)
	}
	return engine.Apply(step.ID, line)
}

func applyCheckboxes(engine *wizard.Engine, step catalog.Step, line string) error {
	if line == "" {
		return nil
	}
	var selected []any
	for _, tok := range strings.Split(line, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= len(step.Options) {
			selected = append(selected, step.Options[n-1].Value)
			continue
		}
		selected = append(selected, tok)
	}
	return engine.Apply(step.ID, selected)
}

func readAddress(in *bufio.Scanner, engine *wizard.Engine, stepID, street string) error {
	if street == "" {
		return nil
	}
	city := readLine(in, "city> ")
	province := readLine(in, "province> ")
	postal := readLine(in, "postal code> ")
	return engine.ApplyAddress(stepID, street, city, province, postal)
}

func readCompanyAddress(in *bufio.Scanner, engine *wizard.Engine, stepID, name string) error {
	if name == "" {
		return nil
	}
	if err := engine.Apply(stepID+"_name", name); err != nil {
		return err
	}
	street := readLine(in, "street> ")
	return readAddress(in, engine, stepID, street)
}

func readCCA(in *bufio.Scanner, engine *wizard.Engine) error {
	fmt.Println("asset classes:")
	for _, c := range catalog.CCAClasses() {
		fmt.Printf("  %-5s %-50s %s%%\n", c.Number, c.Description, c.Rate)
	}
	item := model.CCAItem{
		ClassNumber:              readLine(in, "class number> "),
		Description:              readLine(in, "description> "),
		UndepreciatedCapitalCost: readLine(in, "opening UCC> "),
		Additions:                readLine(in, "additions> "),
	}
	added, err := engine.AddCCAItem(item)
	if err != nil {
		return err
	}
	fmt.Printf("added %s (class %s, rate %s%%)\n", added.ID, added.ClassNumber, added.Rate)
	return nil
}

func readLine(in *bufio.Scanner, promptText string) string {
	fmt.Print(promptText)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func finish(r *tui.Renderer, engine *wizard.Engine) {
	fmt.Println("\nAll done. Form-line mapping:")
	snap := engine.Snapshot()
	records := mapping.Project(catalog.Steps(), snap)
	r.Records(records)
	r.Schedules(mapping.RequiredSchedules(snap.Answers))
	fmt.Println("\nRe-run `t2wizard export --json` for the T5 slip data.")
}

func closeAll(st *store.Store, audit *events.AuditLogger) {
	if audit != nil {
		_ = audit.Close()
	}
	_ = st.Close()
}
