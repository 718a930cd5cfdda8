package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/cipher-chat/internal/crypto"
	"github.com/MKhiriev/cipher-chat/internal/stego"
	"github.com/MKhiriev/cipher-chat/models"
	"github.com/spf13/cobra"
)

// codecFlags are the key flags shared by encrypt, decrypt and send.
type codecFlags struct {
	algorithm string
	key       string
	size      int
	mergeJ    bool
	meta      string
}

func (f *codecFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.algorithm, "algorithm", "a", "", "caesar, hill or playfair")
	cmd.Flags().StringVarP(&f.key, "key", "k", "", `shift, matrix such as "3,2;5,7", or keyword`)
	cmd.Flags().IntVar(&f.size, "size", 0, "playfair square size, 5 or 6")
	cmd.Flags().BoolVar(&f.mergeJ, "merge-j", crypto.DefaultPlayfairMergeJ, "playfair: fold J into I in a 5x5 square")
	cmd.Flags().StringVar(&f.meta, "meta", "", "playfair metadata JSON printed by encrypt")
	_ = cmd.MarkFlagRequired("algorithm")
}

func (f *codecFlags) request(cmd *cobra.Command, text string) (models.CryptoRequest, error) {
	req := models.CryptoRequest{
		Algorithm: f.algorithm,
		Text:      text,
		Key:       f.key,
		Size:      f.size,
	}
	if cmd.Flags().Changed("merge-j") {
		mergeJ := f.mergeJ
		req.MergeJ = &mergeJ
	}
	if f.meta != "" {
		var meta crypto.PlayfairMeta
		if err := json.Unmarshal([]byte(f.meta), &meta); err != nil {
			return models.CryptoRequest{}, fmt.Errorf("%w: --meta: %v", crypto.ErrInvalidKey, err)
		}
		req.Meta = &meta
	}
	return req, nil
}

// readText joins args, or reads stdin when there are none or the only
// argument is "-".
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	raw, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return strings.TrimRight(string(raw), "\r\n"), nil
}

func (a *App) encryptCommand() *cobra.Command {
	var flags codecFlags
	cmd := &cobra.Command{
		Use:   "encrypt [text...]",
		Short: "Encrypt text locally",
		Example: `  cipher-chat encrypt -a caesar -k 3 "Hello"
  cipher-chat encrypt -a hill -k "3,2;5,7" "Meet me"
  echo instruments | cipher-chat encrypt -a playfair -k MONARCHY`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCodec(cmd, args, &flags, true)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *App) decryptCommand() *cobra.Command {
	var flags codecFlags
	cmd := &cobra.Command{
		Use:   "decrypt [text...]",
		Short: "Decrypt text locally",
		Example: `  cipher-chat decrypt -a caesar -k 3 "Khoor"
  cipher-chat decrypt -a playfair --meta '{"key":"MONARCHY","size":5,"mergeJ":true,...}' GATLMZCLRQXA`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCodec(cmd, args, &flags, false)
		},
	}
	flags.bind(cmd)
	return cmd
}

func (a *App) runCodec(cmd *cobra.Command, args []string, flags *codecFlags, encrypt bool) error {
	ctx := cmd.Context()

	text, err := readText(cmd, args)
	if err != nil {
		return err
	}
	req, err := flags.request(cmd, text)
	if err != nil {
		return err
	}
	if err = a.validator.Validate(ctx, req); err != nil {
		return err
	}

	run, title := a.cipher.Decrypt, "Decrypted"
	if encrypt {
		run, title = a.cipher.Encrypt, "Encrypted"
	}

	resp, err := run(ctx, req)
	if err != nil {
		return err
	}

	fields := []field{
		{label: "algorithm", value: resp.Algorithm},
		{label: "result", value: resp.Result},
	}
	if resp.Meta != nil {
		raw, err := json.Marshal(resp.Meta)
		if err != nil {
			return fmt.Errorf("error encoding playfair metadata: %w", err)
		}
		fields = append(fields, field{label: "meta", value: string(raw)})
	}
	return a.emit(title, resp.Result, fields...)
}

func (a *App) stegoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stego",
		Short: "Hide text in zero-width characters",
	}

	var cover string
	embed := &cobra.Command{
		Use:     "embed --cover <text> <secret...>",
		Short:   "Hide a secret inside a cover text",
		Example: `  cipher-chat stego embed --cover "Hello world!" hi --copy`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.stego.Embed(cmd.Context(), models.StegoRequest{Cover: cover, Secret: strings.Join(args, " ")})
			if err != nil {
				return err
			}
			return a.emit("Embedded", resp.Text, stegoFields(resp)...)
		},
	}
	embed.Flags().StringVar(&cover, "cover", "", "visible cover text")
	_ = embed.MarkFlagRequired("cover")

	extract := &cobra.Command{
		Use:   "extract [text...]",
		Short: "Recover a secret hidden by embed",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			resp, err := a.stego.Extract(cmd.Context(), models.StegoRequest{Cover: text})
			if err != nil {
				return err
			}
			fields := append([]field{{label: "secret", value: resp.Secret}}, stegoFields(resp)...)
			return a.emit("Extracted", resp.Secret, fields...)
		},
	}

	inspect := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Count hidden bits and show cover capacity",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			resp, err := a.stego.Inspect(cmd.Context(), models.StegoRequest{Cover: text})
			if err != nil {
				return err
			}
			return a.emit("Inspected", strconv.Itoa(resp.Hidden), stegoFields(resp)...)
		},
	}

	cmd.AddCommand(embed, extract, inspect)
	return cmd
}

func stegoFields(resp models.StegoResponse) []field {
	return []field{
		{label: "hidden", value: fmt.Sprintf("%d bits", resp.Hidden)},
		{label: "capacity", value: formatCapacity(resp.Capacity)},
	}
}

func formatCapacity(c stego.Capacity) string {
	return fmt.Sprintf("%d bits (%d chars)", c.Bits, c.Chars)
}
