package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/cipher-chat/internal/adapter"
	"github.com/MKhiriev/cipher-chat/internal/config"
	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/logger"
	"github.com/MKhiriev/cipher-chat/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	adapter *mock.MockServerAdapter
	app     *App
	out     *bytes.Buffer

	copied       []string
	connections  int
	connectedCfg config.ClientConfig
}

func newCLI(t *testing.T, stdin string) *cliFixture {
	t.Helper()
	f := &cliFixture{
		adapter: mock.NewMockServerAdapter(gomock.NewController(t)),
		out:     &bytes.Buffer{},
	}

	factory := func(cfg config.ClientConfig, _ *logger.Logger) (adapter.ServerAdapter, error) {
		f.connections++
		f.connectedCfg = cfg
		return f.adapter, nil
	}
	cfg := config.ClientConfig{Server: "http://localhost:8080", Timeout: time.Second}

	f.app = NewApp(cfg, factory, logger.Nop(),
		WithIO(strings.NewReader(stdin), f.out),
		WithClipboard(func(s string) error {
			f.copied = append(f.copied, s)
			return nil
		}),
		WithVersion("v0.0.1-test"),
	)
	return f
}

func (f *cliFixture) run(args ...string) error {
	return f.app.Run(context.Background(), args)
}

func TestEncrypt(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{name: "caesar args", args: []string{"-a", "caesar", "-k", "3", "abc", "xyz"}, want: "def {|}"},
		{name: "caesar stdin", args: []string{"-a", "caesar", "-k", "3"}, stdin: "Hello\n", want: "Khoor"},
		{name: "caesar dash", args: []string{"-a", "ceasar", "-k", "3", "-"}, stdin: "Hello", want: "Khoor"},
		{name: "playfair", args: []string{"-a", "playfair", "-k", "MONARCHY", "instruments"}, want: "GATLMZCLRQXA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCLI(t, tt.stdin)

			err := f.run(append([]string{"encrypt", "--plain"}, tt.args...)...)

			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", f.out.String())
			assert.Zero(t, f.connections)
		})
	}
}

func TestPlayfair_SixBySixRoundTrip(t *testing.T) {
	enc := newCLI(t, "")
	require.NoError(t, enc.run("encrypt", "--plain", "-a", "playfair", "-k", "spy", "--size", "6", "--merge-j=false", "Agent 007"))
	ciphertext := strings.TrimSpace(enc.out.String())
	assert.Len(t, ciphertext, 8)

	dec := newCLI(t, "")
	require.NoError(t, dec.run("decrypt", "--plain", "-a", "playfair", "-k", "spy", "--size", "6", ciphertext))
	assert.Equal(t, "AGENT007\n", dec.out.String())
}

func TestEncrypt_PlayfairCardShowsMeta(t *testing.T) {
	f := newCLI(t, "")

	require.NoError(t, f.run("encrypt", "-a", "playfair", "-k", "MONARCHY", "instruments"))

	out := f.out.String()
	assert.Contains(t, out, "Encrypted")
	assert.Contains(t, out, "GATLMZCLRQXA")
	assert.Contains(t, out, `"insertedFillerPositions"`)
}

func TestDecrypt_Playfair(t *testing.T) {
	_, meta, err := crypto.PlayfairEncode("instruments", "MONARCHY", 5, true)
	require.NoError(t, err)
	rawMeta, err := json.Marshal(meta)
	require.NoError(t, err)

	t.Run("with meta", func(t *testing.T) {
		f := newCLI(t, "")
		require.NoError(t, f.run("decrypt", "--plain", "-a", "playfair", "--meta", string(rawMeta), "GATLMZCLRQXA"))
		assert.Equal(t, "INSTRUMENTS\n", f.out.String())
	})

	t.Run("keyword only", func(t *testing.T) {
		f := newCLI(t, "")
		require.NoError(t, f.run("decrypt", "--plain", "-a", "playfair", "-k", "MONARCHY", "GATLMZCLRQXA"))
		assert.Equal(t, "INSTRUMENTSX\n", f.out.String())
	})

	t.Run("broken meta", func(t *testing.T) {
		f := newCLI(t, "")
		err := f.run("decrypt", "-a", "playfair", "--meta", "{", "GATLMZCLRQXA")
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})
}

func TestCodec_Errors(t *testing.T) {
	t.Run("algorithm is required", func(t *testing.T) {
		f := newCLI(t, "")
		err := f.run("encrypt", "-k", "3", "abc")
		assert.ErrorContains(t, err, `required flag(s) "algorithm" not set`)
	})

	t.Run("caesar key must be a number", func(t *testing.T) {
		f := newCLI(t, "")
		err := f.run("encrypt", "-a", "caesar", "-k", "three", "abc")
		assert.ErrorIs(t, err, crypto.ErrInvalidKey)
	})

	t.Run("singular hill key", func(t *testing.T) {
		f := newCLI(t, "")
		err := f.run("decrypt", "-a", "hill", "-k", "2,4;1,2", "abcd")
		assert.ErrorIs(t, err, crypto.ErrNotInvertible)
	})
}

func TestCopyFlag(t *testing.T) {
	f := newCLI(t, "")

	require.NoError(t, f.run("encrypt", "--copy", "-a", "caesar", "-k", "3", "Hello"))

	assert.Equal(t, []string{"Khoor"}, f.copied)
	assert.Contains(t, f.out.String(), "copied to clipboard")
}

func TestCopyFlag_ClipboardFailure(t *testing.T) {
	f := newCLI(t, "")
	f.app.copy = func(string) error { return errors.New("no display") }

	err := f.run("encrypt", "--copy", "-a", "caesar", "-k", "3", "Hello")

	assert.ErrorContains(t, err, "no display")
}

func TestStego_RoundTrip(t *testing.T) {
	embed := newCLI(t, "")
	require.NoError(t, embed.run("stego", "embed", "--plain", "--cover", "Hello world!", "hi"))
	stegoText := embed.out.String()
	assert.NotEqual(t, "Hello world!\n", stegoText)

	extract := newCLI(t, stegoText)
	require.NoError(t, extract.run("stego", "extract", "--plain"))
	assert.Equal(t, "hi\n", extract.out.String())

	inspect := newCLI(t, stegoText)
	require.NoError(t, inspect.run("stego", "inspect", "--plain"))
	assert.Equal(t, "16\n", inspect.out.String())
}

func TestStego_EmbedNeedsCover(t *testing.T) {
	f := newCLI(t, "")
	err := f.run("stego", "embed", "hi")
	assert.ErrorContains(t, err, `required flag(s) "cover" not set`)
}

func TestVersionFlag(t *testing.T) {
	f := newCLI(t, "")
	require.NoError(t, f.run("--version"))
	assert.Contains(t, f.out.String(), "v0.0.1-test")
}
