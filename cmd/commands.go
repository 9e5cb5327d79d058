package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"home_patterns/internal/decorator"
	"home_patterns/internal/handlers"
	"home_patterns/internal/home"
	"home_patterns/internal/scenario"
	"home_patterns/internal/server"
	"home_patterns/internal/service"
	"home_patterns/internal/strategy"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	cfgFile      string
	remoteOutput string
)

var rootCmd = &cobra.Command{
	Use:   "home-patterns",
	Short: "Design pattern demos around a home automation remote",
	Long: `home-patterns runs small design pattern demos.

Demos:
  command    - remote with undo/redo over a thermostat, light and fan
  observer   - weather station notifying displays
  strategy   - calculator with swappable operations
  decorator  - pizza with priced toppings`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yml)")
	remoteCmd.Flags().StringVarP(&remoteOutput, "output", "o", "text", "result format: text or yaml")
	rootCmd.AddCommand(demoCmd, remoteCmd, calcCmd, pizzaCmd, serveCmd)
}

func rigOptions(a *app) scenario.RigOptions {
	return scenario.RigOptions{
		InitialC:   a.cfg.Thermostat.InitialC,
		MaxHistory: a.cfg.Remote.MaxHistory,
		Log:        a.log,
	}
}

var demoCmd = &cobra.Command{
	Use:       "demo [all|command|observer|strategy|decorator]",
	Short:     "Run a scripted pattern demo",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: append([]string{"all"}, scenario.Demos...),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfgFile)
		if err != nil {
			return err
		}
		defer a.close()

		env := scenario.Env{
			Console:  os.Stdout,
			Remote:   scenario.NewRemoteRig(os.Stdout, a.repos, rigOptions(a)),
			Readings: service.NewReadingJournal(a.repos.EventRepo, "weather_station", a.log),
		}
		name := "all"
		if len(args) == 1 {
			name = args[0]
		}
		if name == "all" {
			return scenario.RunAll(cmd.Context(), env)
		}
		return scenario.RunDemo(cmd.Context(), name, env)
	},
}

var remoteCmd = &cobra.Command{
	Use:   "remote <step>...",
	Short: "Drive the remote with a step script",
	Long: `Steps:
  +N, -N          raise or lower the thermostat by N degrees
  light:on|off    switch the light
  fan:on|off      switch the fan
  again           execute the bound command once more
  undo, redo`,
	Example: "  home-patterns remote +5 again undo redo light:on undo",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if remoteOutput != "text" && remoteOutput != "yaml" {
			return fmt.Errorf("unknown output format %q", remoteOutput)
		}
		steps, err := scenario.ParseSteps(args)
		if err != nil {
			return err
		}
		a, err := newApp(cfgFile)
		if err != nil {
			return err
		}
		defer a.close()

		rig := scenario.NewRemoteRig(os.Stdout, a.repos, rigOptions(a))
		res, err := scenario.RunSteps(cmd.Context(), rig.Service, rig.Devices, steps)
		if err != nil {
			return err
		}
		return printRemoteResult(cmd, res, remoteOutput)
	},
}

func printRemoteResult(cmd *cobra.Command, res scenario.CommandResult, format string) error {
	out := cmd.OutOrStdout()
	if format == "yaml" {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Fprintf(out, "thermostat: %g°C, light: %s, fan: %s\n", res.TemperatureC, res.Light, res.Fan)
	fmt.Fprintf(out, "executed: %v\n", res.Executed)
	fmt.Fprintf(out, "undone: %v\n", res.Undone)
	return nil
}

var calcCmd = &cobra.Command{
	Use:     "calc <a> <op> <b>",
	Short:   "Evaluate a binary operation with the matching strategy",
	Example: "  home-patterns calc 6 / 2",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("operand %q: %w", args[0], err)
		}
		b, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("operand %q: %w", args[2], err)
		}
		s, err := strategy.Lookup(args[1])
		if err != nil {
			return err
		}
		v, err := strategy.NewCalculator(s).Perform(a, b)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
		return nil
	},
}

var pizzaCmd = &cobra.Command{
	Use:     "pizza [topping...]",
	Short:   "Price a regular pizza with toppings (pepperoni, cheese)",
	Example: "  home-patterns pizza pepperoni cheese",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := decorator.WithToppings(decorator.RegularPizza{}, args...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), decorator.Order(p))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only status API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cfgFile)
		if err != nil {
			return err
		}
		defer a.close()

		// Baseline devices only; the API never drives a remote.
		devices := home.NewDevices(io.Discard, a.cfg.Thermostat.InitialC)
		services := service.NewStatusService(a.repos, devices)
		apiHandler := handlers.NewHandler(services, a.log, handlers.WithStream(handlers.StreamOptions{
			DefaultInterval: a.cfg.Stream.DefaultInterval,
			MaxInterval:     a.cfg.Stream.MaxInterval,
		}))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(a.cfg.Port, apiHandler.InitRoutes(), a.cfg.HTTP, a.log)
		if err := srv.Run(ctx); err != nil {
			a.log.Errorw("http_server_failed", "err", err, "addr", srv.Addr())
			return err
		}
		a.log.Infow("http_stopped")
		return nil
	},
}
