package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arjunpx/fuelbill-api/internal/application/service"
	"github.com/arjunpx/fuelbill-api/internal/domain/billing"
	"github.com/arjunpx/fuelbill-api/internal/logger"
	"github.com/arjunpx/fuelbill-api/pkg/printer"
)

var escposCmd = &cobra.Command{
	Use:   "escpos [bill.json]",
	Short: "Format a receipt as a raw ESC/POS job",
	Long: `Format a bill record as the ESC/POS byte stream a thermal printer
would receive. The job goes to a file or straight to a printer device.`,
	Example: `  # Dump the sample receipt job to a file
  fuelbillctl escpos -o job.bin

  # Send a saved bill to a USB thermal printer
  fuelbillctl escpos bill.json --device /dev/usb/lp0`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEscpos,
}

func init() {
	rootCmd.AddCommand(escposCmd)

	escposCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	escposCmd.Flags().String("device", "", "USB printer device path")
	escposCmd.Flags().String("address", "", "Network printer host:port")
	escposCmd.Flags().Int("paper-width", 32, "Characters per line (32 for 58mm, 48 for 80mm)")
}

func runEscpos(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("escpos")

	rec, err := loadBill(args)
	if err != nil {
		return err
	}

	paperWidth, _ := cmd.Flags().GetInt("paper-width")
	doc := billing.Sections(rec.BrandTemplate, &rec)
	job := service.FormatReceipt(doc, paperWidth)

	device, _ := cmd.Flags().GetString("device")
	address, _ := cmd.Flags().GetString("address")
	output, _ := cmd.Flags().GetString("output")

	switch {
	case device != "":
		p := printer.NewUSBPrinter(device)
		if err := p.Print(job); err != nil {
			return err
		}
		log.Info().Str("device", device).Int("bytes", len(job)).Msg("job sent")
	case address != "":
		p := printer.NewNetworkPrinter(address)
		if err := p.Print(job); err != nil {
			return err
		}
		log.Info().Str("address", address).Int("bytes", len(job)).Msg("job sent")
	case output != "":
		p := printer.NewFilePrinter(output)
		if err := p.Print(job); err != nil {
			return err
		}
		log.Info().Str("output", output).Int("bytes", len(job)).Msg("job written")
	default:
		if _, err := os.Stdout.Write(job); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "%d bytes\n", len(job))
	return nil
}
