package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/w-utter/realsense-go/pkg/realsense"
)

var listProfiles bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected cameras",
	Long:  `Enumerate connected RealSense devices with their sensors, and optionally every stream profile each sensor offers.`,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listProfiles, "profiles", false, "also list stream profiles per sensor")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := realsense.NewContext()
	if err != nil {
		if errors.Is(err, realsense.ErrNotBuilt) {
			return fmt.Errorf("this build has no camera support (compiled without cgo or librealsense2)")
		}
		return err
	}
	defer ctx.Close()

	if v, err := realsense.LibraryVersion(); err == nil {
		logger.Debug().Str("librealsense", v).Msg("native library linked")
	}

	devices, err := ctx.QueryDevices(realsense.ProductLineAny)
	if err != nil {
		return fmt.Errorf("query devices: %w", err)
	}
	if len(devices) == 0 {
		fmt.Println("No devices connected.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Name", "Serial", "Firmware", "Product Line", "Sensors")

	for _, dev := range devices {
		firmware, _ := dev.Info(realsense.CameraInfoFirmwareVersion)
		productLine, _ := dev.Info(realsense.CameraInfoProductLine)

		sensors, err := dev.QuerySensors()
		if err != nil {
			return fmt.Errorf("query sensors: %w", err)
		}
		table.Append(dev.Name(), dev.SerialNumber(), firmware, productLine, fmt.Sprintf("%d", len(sensors)))

		if listProfiles {
			if err := printProfiles(sensors); err != nil {
				return err
			}
		}
		for _, s := range sensors {
			_ = s.Close()
		}
		_ = dev.Close()
	}

	return table.Render()
}

func printProfiles(sensors []*realsense.Sensor) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Sensor", "Stream", "Index", "Format", "FPS", "Default")

	for _, s := range sensors {
		name, _ := s.Info(realsense.CameraInfoName)
		profiles, err := s.StreamProfiles()
		if err != nil {
			return fmt.Errorf("stream profiles: %w", err)
		}
		for _, p := range profiles {
			def := ""
			if p.IsDefault() {
				def = "yes"
			}
			table.Append(name,
				p.Stream().String(),
				fmt.Sprintf("%d", p.Index()),
				p.Format().String(),
				fmt.Sprintf("%d", p.Framerate()),
				def)
		}
	}

	return table.Render()
}
