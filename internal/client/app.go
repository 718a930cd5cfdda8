package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/cipher-chat/internal/adapter"
	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/service"
	"github.com/MKhiriev/cipher-chat/internal/validators"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// AdapterFactory opens a connection to the server described by cfg.
type AdapterFactory func(cfg config.ClientConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

// App is the cipher-chat CLI.
type App struct {
	cfg        config.ClientConfig
	newAdapter AdapterFactory
	adapter    adapter.ServerAdapter

	cipher    service.CipherService
	stego     service.StegoService
	validator validators.Validator

	// copyResult and plain are bound to the --copy and --plain flags.
	copyResult bool
	plain      bool
	copy       func(string) error

	in  io.Reader
	out io.Writer

	version string
	logger  *logger.Logger
}

// Option customises an [App].
type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(copy func(string) error) Option {
	return func(a *App) {
		a.copy = copy
	}
}

// WithVersion sets the version reported by --version.
func WithVersion(version string) Option {
	return func(a *App) {
		a.version = version
	}
}

// NewApp builds the CLI. cfg holds the environment defaults; flags given on
// the command line take precedence. newAdapter is called lazily by the
// commands that need the server.
func NewApp(cfg config.ClientConfig, newAdapter AdapterFactory, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		cipher:     service.NewCipherService(crypto.NewCodec(nil), nil, logger),
		stego:      service.NewStegoService(logger),
		validator:  validators.NewRequestValidator(),
		copy:       clipboard.WriteAll,
		in:         os.Stdin,
		out:        os.Stdout,
		version:    "N/A",
		logger:     logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run executes the command line args (without the program name).
func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(a.logger.WithContext(ctx))
}

func (a *App) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipher-chat",
		Short: "Classical ciphers and an eavesdroppable chat",
		Long: `cipher-chat encrypts text with the Caesar, Hill and Playfair ciphers,
hides secrets in zero-width characters and talks to a cipher-chat server.`,
		Example: `  # Encrypt locally
  cipher-chat encrypt -a caesar -k 3 "Hello"

  # Log in and send a Playfair message
  export CIPHER_CHAT_TOKEN=$(cipher-chat login -l alice -p secret --plain)
  cipher-chat send -a playfair -k MONARCHY "instruments"`,
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.out)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.cfg.Server, "server", a.cfg.Server, "server base URL (env CIPHER_CHAT_SERVER)")
	flags.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "request timeout (env CIPHER_CHAT_TIMEOUT)")
	flags.StringVar(&a.cfg.Token, "token", a.cfg.Token, "bearer token (env CIPHER_CHAT_TOKEN)")
	flags.BoolVar(&a.copyResult, "copy", false, "copy the main result to the clipboard")
	flags.BoolVar(&a.plain, "plain", false, "print only the main result, unstyled")

	cmd.AddCommand(
		a.encryptCommand(),
		a.decryptCommand(),
		a.stegoCommand(),
		a.registerCommand(),
		a.loginCommand(),
		a.captchaCommand(),
		a.sendCommand(),
		a.listCommand(),
		a.readCommand(),
		a.editCommand(),
		a.interceptCommand(),
		a.versionCommand(),
	)
	return cmd
}

// server returns the adapter, connecting on first use.
func (a *App) server() (adapter.ServerAdapter, error) {
	if a.adapter != nil {
		return a.adapter, nil
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	sa, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return nil, fmt.Errorf("error connecting to %s: %w", a.cfg.Server, err)
	}
	a.adapter = sa
	return sa, nil
}

// emit prints result either plain or as a card, then copies it when
// --copy is set.
func (a *App) emit(title, result string, fields ...field) error {
	if a.plain {
		fmt.Fprintln(a.out, result)
	} else {
		printCard(a.out, title, fields...)
	}

	if !a.copyResult {
		return nil
	}
	if err := a.copy(result); err != nil {
		return fmt.Errorf("error copying to clipboard: %w", err)
	}
	if !a.plain {
		printHint(a.out, "copied to clipboard")
	}
	return nil
}
