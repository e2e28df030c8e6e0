package main

import (
	"flag"
	"image"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/waxcat/textel"
	"github.com/waxcat/textel/stream"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	addr   = flag.String("addr", ":8080", "address to listen on")
	width  = flag.Int("W", 45, "width of published art in cells")
	height = flag.Int("H", 20, "height of published art in cells")

	upgrader = websocket.Upgrader{
		HandshakeTimeout: 5 * time.Second,
	}
)

func main() {
	flag.Parse()

	gallery := stream.NewGallery()

	e := echo.New()

	e.Use(middleware.Logger())

	api := e.Group("/api")

	api.GET("/client", func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		gallery.HandleConn(ws)

		return nil
	})

	// The request body is the raw image; the server never fetches images
	// itself.
	api.POST("/art/:title", func(c echo.Context) error {
		img, _, err := image.Decode(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				"undecodable image: "+err.Error())
		}

		prepared, err := textel.PrepareImage(img, *width, *height)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		art, err := textel.Sample(prepared, *width, *height)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}

		entry, err := gallery.Publish(c.Param("title"), art)
		if err != nil {
			return err
		}

		return c.JSON(http.StatusOK, entry)
	})

	api.GET("/art/:title", func(c echo.Context) error {
		entry, ok := gallery.Entry(stream.NormalizeTitle(c.Param("title")))
		if !ok {
			return echo.NewHTTPError(http.StatusNotFound, "no such art")
		}

		return c.JSON(http.StatusOK, entry)
	})

	api.GET("/art", func(c echo.Context) error {
		return c.JSON(http.StatusOK, gallery.Titles())
	})

	e.Logger.Fatal(e.Start(*addr))
}
