package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/waxcat/textel"
)

var (
	gridWidth   = flag.Int("W", 45, "set the width of the output grid in cells")
	gridHeight  = flag.Int("H", 20, "set the height of the output grid in cells")
	outputPath  = flag.String("o", "", "write the grid as JSON to the given file instead of rendering it")
	previewPath = flag.String("p", "", "set location of prepared image preview output (will be PNG)")
	background  = flag.String("bg", "", "set the shared background color as R,G,B")
	indexed     = flag.Bool("256", false, "render with the xterm 256-color palette instead of true color")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if flag.Arg(0) == "" {
		log.Println("Usage: textel [options] input_image")
		log.Println("")
		log.Println("Textel converts an image (PNG, JPG, GIF, BMP or WebP) into a grid of")
		log.Println("colored block characters, and either renders it to the terminal or")
		log.Println("saves it as JSON for embedding in a collection file.")
		log.Println("")
		log.Println("The image is scaled and center-cropped to an exact multiple of the")
		log.Println("grid before sampling, so it must be at least as large as the grid.")
		log.Println("")
		log.Println("Options:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *gridWidth <= 0 || *gridHeight <= 0 {
		log.Println("Grid dimensions must be positive.")
		os.Exit(1)
	}

	var renderer textel.Renderer
	if *indexed {
		renderer.Palette = textel.XTerm256()
	}

	if *background != "" {
		var r, g, b int
		if _, err := fmt.Sscanf(*background, "%d,%d,%d", &r, &g, &b); err != nil {
			log.Println("Background color must be specified as R,G,B.")
			os.Exit(1)
		}
		if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
			log.Println("Background channels must be between 0 and 255.")
			os.Exit(1)
		}
		renderer.Background = [3]uint8{uint8(r), uint8(g), uint8(b)}
	}

	start := time.Now()

	var img image.Image

	func() {
		input, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Println("Failed to open image:", err)
			os.Exit(1)
		}
		defer input.Close()

		img, _, err = image.Decode(input)
		if err != nil {
			log.Println("Failed to decode image:", err)
			os.Exit(1)
		}
	}()

	prepared, err := textel.PrepareImage(img, *gridWidth, *gridHeight)
	if err != nil {
		log.Println("Failed to prepare image:", err)
		os.Exit(1)
	}

	if *previewPath != "" {
		func() {
			preview, err := os.Create(*previewPath)
			if err != nil {
				log.Println("Warning: Failed to create preview image:", err)
				return
			}
			defer preview.Close()

			err = png.Encode(preview, prepared)
			if err != nil {
				log.Println("Warning: Failed to encode preview image:", err)
			}
		}()
	}

	art, err := textel.Sample(prepared, *gridWidth, *gridHeight)
	if err != nil {
		log.Println("Failed to sample image:", err)
		os.Exit(1)
	}

	if *outputPath != "" {
		data, err := json.Marshal(art)
		if err != nil {
			log.Println("Failed to encode grid:", err)
			os.Exit(1)
		}

		err = os.WriteFile(*outputPath, data, 0644)
		if err != nil {
			log.Println("Failed to write to output file:", err)
			os.Exit(1)
		}

		log.Println("Done! That took " + time.Since(start).String() + ".")
		log.Printf("Grid outputted to \"%s\".\n", *outputPath)
		return
	}

	err = renderer.Render(art, os.Stdout)
	if err != nil {
		log.Println("Failed to render:", err)
		os.Exit(1)
	}
}
