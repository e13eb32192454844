package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"staycalc/internal/config"
	"staycalc/internal/obs"
	"staycalc/internal/quote"
	"staycalc/internal/tariff"
	"staycalc/internal/web"
)

const appVersion = "0.2.0"

type cliOptions struct {
	configPath string
	port       int
	asJSON     bool

	service  string
	checkIn  string
	checkOut string

	date  string
	start string
	end   string

	count  int
	diaper bool
	bath   bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var opts cliOptions

	cmd := &cobra.Command{
		Use:           "staycalc",
		Short:         "Pet hoteling and daycare fee calculator (CLI or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			if opts.port > 0 {
				cfg.Address = fmt.Sprintf(":%d", opts.port)
				printListenAddrs(out, opts.port)
				return serveWeb(cmd.Context(), cfg, loc)
			}

			// Logs go to stderr so stdout stays the quote.
			log := obs.NewLogger(cfg.Env, os.Stderr, slog.LevelWarn)
			res, err := runQuote(quote.New(log), cfg, loc, time.Now().In(loc), opts)
			if err != nil {
				return err
			}
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			printCLI(out, res)
			return nil
		},
	}

	cmd.SetOut(out)
	cmd.Version = appVersion
	cmd.SetVersionTemplate("staycalc v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.Flags().StringVar(&opts.service, "service", string(quote.Hoteling), "Service: hoteling or daycare")
	cmd.Flags().StringVar(&opts.checkIn, "checkin", "", `Hoteling check-in "YYYY-MM-DD HH:MM" (default today at form.checkin)`)
	cmd.Flags().StringVar(&opts.checkOut, "checkout", "", `Hoteling check-out "YYYY-MM-DD HH:MM" (default today at form.checkout)`)
	cmd.Flags().StringVar(&opts.date, "date", "", "Daycare date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&opts.start, "start", "", "Daycare start HH:MM (default form.daycare_start)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Daycare end HH:MM (default form.daycare_end)")
	cmd.Flags().IntVar(&opts.count, "count", 1, fmt.Sprintf("Number of animals (%d-%d)", quote.MinAnimals, quote.MaxAnimals))
	cmd.Flags().BoolVar(&opts.diaper, "diaper", false, "Diaper add-on")
	cmd.Flags().BoolVar(&opts.bath, "bath", false, "Bath add-on (hoteling only)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the quote as JSON")

	cmd.Flags().IntVar(&opts.port, "port", 0, "Run web UI on this port (e.g. 8484)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to YAML config (default $CONFIG_PATH)")

	return cmd
}

func runQuote(calc *quote.Calculator, cfg *config.Config, loc *time.Location, now time.Time, opts cliOptions) (quote.Result, error) {
	if opts.count < quote.MinAnimals || opts.count > quote.MaxAnimals {
		return quote.Result{}, fmt.Errorf("--count must be between %d and %d", quote.MinAnimals, quote.MaxAnimals)
	}

	switch quote.Service(strings.ToLower(strings.TrimSpace(opts.service))) {
	case quote.Hoteling:
		in := quote.DefaultHoteling(now, quote.MustClock(cfg.CheckIn), quote.MustClock(cfg.CheckOut))
		if opts.checkIn != "" {
			t, err := quote.ParseDateTime(opts.checkIn, loc)
			if err != nil {
				return quote.Result{}, fmt.Errorf("invalid --checkin: %w", err)
			}
			in.CheckIn = t
		}
		if opts.checkOut != "" {
			t, err := quote.ParseDateTime(opts.checkOut, loc)
			if err != nil {
				return quote.Result{}, fmt.Errorf("invalid --checkout: %w", err)
			}
			in.CheckOut = t
		}
		in.AnimalCount = opts.count
		in.Diaper = opts.diaper
		in.Bath = opts.bath
		return calc.Hoteling(in)

	case quote.Daycare:
		if opts.bath {
			return quote.Result{}, fmt.Errorf("--bath is only offered with hoteling")
		}
		day := now
		if opts.date != "" {
			d, err := quote.ParseDate(opts.date, loc)
			if err != nil {
				return quote.Result{}, fmt.Errorf("invalid --date: %w", err)
			}
			day = d
		}
		start, err := clockOr(opts.start, cfg.DaycareStart)
		if err != nil {
			return quote.Result{}, fmt.Errorf("invalid --start: %w", err)
		}
		end, err := clockOr(opts.end, cfg.DaycareEnd)
		if err != nil {
			return quote.Result{}, fmt.Errorf("invalid --end: %w", err)
		}
		return calc.Daycare(quote.DaycareOn(day, start, end, opts.count, opts.diaper))

	default:
		return quote.Result{}, fmt.Errorf("--service must be hoteling or daycare, got %q", opts.service)
	}
}

func clockOr(val, def string) (quote.Clock, error) {
	if strings.TrimSpace(val) == "" {
		return quote.ParseClock(def)
	}
	return quote.ParseClock(val)
}

func printCLI(w io.Writer, res quote.Result) {
	fmt.Fprintln(w, "이용기간 안내")
	fmt.Fprintln(w, res.Summary)
	fmt.Fprintln(w)

	if !res.OK {
		fmt.Fprintln(w, res.Banner())
		return
	}

	b := res.Breakdown
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"항목", "금액"})

	base := "기본 요금"
	if b.Tier != "" {
		base += " (" + b.Tier + ")"
	} else {
		base += fmt.Sprintf(" (%d박)", b.Nights)
	}
	tw.AppendRow(table.Row{base, tariff.FormatWon(b.Base)})
	if b.Surcharge > 0 {
		tw.AppendRow(table.Row{"추가 요금", tariff.FormatWon(b.Surcharge)})
	}
	if b.Diaper > 0 {
		tw.AppendRow(table.Row{"기저귀", tariff.FormatWon(b.Diaper)})
	}
	if b.Bath > 0 {
		tw.AppendRow(table.Row{"목욕", tariff.FormatWon(b.Bath)})
	}
	if b.Multiplier > 1 {
		tw.AppendRow(table.Row{fmt.Sprintf("마릿수 곱 (x%d)", b.Multiplier), tariff.FormatWon(b.Gross)})
	}
	if b.Discount > 0 {
		tw.AppendRow(table.Row{"다두 할인 (10%)", "-" + tariff.FormatWon(b.Discount)})
	}
	tw.AppendFooter(table.Row{"최종 요금", res.FeeText})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	tw.Render()
}

/* ---------------- web ---------------- */

func serveWeb(ctx context.Context, cfg *config.Config, loc *time.Location) error {
	log := obs.NewLogger(cfg.Env, os.Stdout, obs.ParseLevel(cfg.LogLevel))

	reg := prometheus.NewRegistry()
	calc := quote.New(log, quote.WithRecorder(web.NewMetrics(reg)))

	srv := web.New(web.Options{
		Log:  log,
		Calc: calc,
		Defaults: web.Defaults{
			CheckIn:      quote.MustClock(cfg.CheckIn),
			CheckOut:     quote.MustClock(cfg.CheckOut),
			DaycareStart: quote.MustClock(cfg.DaycareStart),
			DaycareEnd:   quote.MustClock(cfg.DaycareEnd),
		},
		Location: loc,
		Version:  appVersion,
		Gatherer: reg,
	})

	httpSrv := &http.Server{
		Addr:         cfg.Address,
		Handler:      srv.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("web server started", slog.String("addr", cfg.Address), slog.String("timezone", loc.String()))
	return web.Run(ctx, httpSrv, log)
}

func printListenAddrs(w io.Writer, port int) {
	fmt.Fprintln(w, "Listening on:")
	fmt.Fprintf(w, "  http://127.0.0.1:%d/\n", port)

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(w, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(w)
}
