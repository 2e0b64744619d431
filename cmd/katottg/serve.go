package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/toponyms/internal/register"
	"github.com/JonMunkholm/toponyms/internal/store"
	"github.com/JonMunkholm/toponyms/internal/translit"
	"github.com/JonMunkholm/toponyms/internal/web"
)

var errNoSource = errors.New("serve needs DATABASE_URL or --data")

func newServeCmd(a *app) *cobra.Command {
	var (
		data string
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the transliteration and register API",
		Long: `Serves records from PostgreSQL when DATABASE_URL is set, otherwise from the
register file given with --data.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if err := a.revalidate(); err != nil {
				return err
			}
			return a.runServe(cmd, data)
		},
	}

	cmd.Flags().StringVar(&data, "data", "", "register file served when no database is configured")
	cmd.Flags().StringVar(&host, "host", "", "listen host (env SERVER_HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (env SERVER_PORT)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, data string) error {
	ctx := cmd.Context()

	source, cleanup, err := a.openSource(cmd, data)
	if err != nil {
		return err
	}
	defer cleanup()

	server := web.NewServer(source, translit.Default(), a.cfg.Server)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		server.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}

// openSource picks the database when configured, else the data file.
func (a *app) openSource(cmd *cobra.Command, data string) (web.Source, func(), error) {
	if a.cfg.Database.Enabled() {
		st, pool, err := store.Open(cmd.Context(), a.cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		if err := st.Migrate(cmd.Context()); err != nil {
			pool.Close()
			return nil, nil, err
		}
		if imp, err := st.LatestImport(cmd.Context()); err == nil {
			slog.Info("serving database import", "import_id", imp.ID, "records", imp.Records, "imported_at", imp.ImportedAt)
		} else if errors.Is(err, store.ErrNoImports) {
			slog.Warn("database holds no imports yet")
		} else {
			pool.Close()
			return nil, nil, err
		}
		return st, pool.Close, nil
	}

	if data == "" {
		return nil, nil, errNoSource
	}
	recs, err := a.loadRecords(cmd, data)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("serving register file", "path", data, "records", len(recs))
	return register.NewSet(recs), func() {}, nil
}
