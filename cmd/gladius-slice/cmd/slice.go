package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3MFConsortium/gladius-sub002/config"
	"github.com/3MFConsortium/gladius-sub002/contour"
	gladiusio "github.com/3MFConsortium/gladius-sub002/io"
	"github.com/3MFConsortium/gladius-sub002/layer"
)

var (
	sliceConfigVal, sliceFormatVal string
	sliceOffsetVal                 float32
)

// sliceCmd traces a single distance-grid file into contours and writes them
// out in the requested format.
var sliceCmd = &cobra.Command{
	Use:   "slice INPUT OUTPUT",
	Short: "trace a distance-grid file into 2D contours",
	Long: `Read a distance-grid file (a single marching-squares layer sampled
off-line), trace its zero iso-line, run the full contour post-processing
pipeline, and write the result to OUTPUT as SVG or CLI.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		params := config.Default()
		if sliceConfigVal != "" {
			loaded, err := config.Load(sliceConfigVal)
			check(err)
			params = loaded
		}

		distmap, err := readDistanceMap(args[0])
		check(err)

		grid, clip := layer.BuildGridStates(distmap)

		extractor := contour.NewExtractor(contour.NewClipperOffsetBackend())
		extractor.SetSimplificationTolerance(params.SimplificationTolerance)
		check(extractor.AddIsoLineFromMarchingSquare(grid, clip))
		extractor.RunPostProcessing()

		closed := extractor.GetContour()
		if sliceOffsetVal != 0 {
			offset, err := extractor.GenerateOffsetContours(sliceOffsetVal, closed)
			check(err)
			closed = offset
		}
		open := extractor.GetOpenContours()

		check(writeContours(args[1], sliceFormatVal, float32(clip.Width()), float32(clip.Height()), closed, open))

		quality := extractor.GetSliceQuality()
		fmt.Printf("wrote %d closed, %d open contours to '%s' (%d self-intersections)\n",
			len(closed), len(open), args[1], quality.SelfIntersections)
	},
}

func init() {
	RootCmd.AddCommand(sliceCmd)

	sliceCmd.Flags().StringVar(&sliceConfigVal, "config", "", "slicing parameters YAML file (defaults built in if omitted)")
	sliceCmd.Flags().StringVar(&sliceFormatVal, "format", "svg", "output format, 'svg' or 'cli'")
	sliceCmd.Flags().Float32Var(&sliceOffsetVal, "offset", 0, "inflate (positive) or shrink (negative) the traced contours by this many mm before writing")
}

// readDistanceMap parses a simple whitespace-separated distance-grid file:
// a header line "width height pixelSize_mm" followed by width*height
// distance values in row-major order.
func readDistanceMap(path string) (*layer.DistanceMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !scanner.Scan() {
		return nil, fmt.Errorf("gladius-slice: empty distance-grid file '%s'", path)
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 3 {
		return nil, fmt.Errorf("gladius-slice: expected 'width height pixelSize' header, got %q", scanner.Text())
	}
	w, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, err
	}
	h, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, err
	}
	pixelSize, err := strconv.ParseFloat(header[2], 32)
	if err != nil {
		return nil, err
	}

	values := make([]float32, 0, w*h)
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			v, err := strconv.ParseFloat(tok, 32)
			if err != nil {
				return nil, err
			}
			values = append(values, float32(v))
		}
	}
	if len(values) != w*h {
		return nil, fmt.Errorf("gladius-slice: expected %d values, got %d", w*h, len(values))
	}

	return &layer.DistanceMap{Width: w, Height: h, PixelSize: float32(pixelSize), Values: values}, nil
}

func writeContours(path, format string, width, height float32, closed, open []contour.PolyLine) error {
	switch format {
	case "svg":
		w, err := gladiusio.NewSVGWriter(path, width, height)
		if err != nil {
			return err
		}
		if err := w.WriteLayer(0, closed, open); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	case "cli":
		w, err := gladiusio.NewCLIWriter(path, 1.0)
		if err != nil {
			return err
		}
		if err := w.WriteLayer(0, closed, open); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	default:
		return fmt.Errorf("gladius-slice: unknown format %q, want 'svg' or 'cli'", format)
	}
}
