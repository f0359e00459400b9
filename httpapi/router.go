// Package httpapi exposes the codec over plain HTTP.
package httpapi

import (
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"urlencoder/config"
	"urlencoder/encoding"
	"urlencoder/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-Id"

// MaxBodyBytes is the largest request body the API accepts.
const MaxBodyBytes = 1024 * 1024 // 1 MiB

const requestIDKey = "requestId"

type handler struct {
	logger zerolog.Logger
	codec  *encoding.Codec
	rl     logging.ResultsLogger
}

type formPair struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// NewRouter creates the gin engine serving /encode, /decode, /form/decode and /healthz.
// /decode?lenient=true keeps malformed escapes instead of answering 400.
func NewRouter(logger zerolog.Logger, codec *encoding.Codec, rl logging.ResultsLogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger))

	h := &handler{logger: logger, codec: codec, rl: rl}
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/encode", h.encode)
	r.POST("/decode", h.decode)
	r.POST("/form/decode", h.decodeForm)
	return r
}

// Serve runs the router on the configured listener until the server is shut down.
func Serve(logger zerolog.Logger, cfg config.HTTPServer, h http.Handler) (*http.Server, <-chan error, error) {
	lis, err := net.Listen(cfg.Network, cfg.Address)
	if err != nil {
		return nil, nil, err
	}
	if cfg.MaxConnections > 0 {
		lis = netutil.LimitListener(lis, cfg.MaxConnections)
	}

	srv := &http.Server{
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", lis.Addr().String()).Msg("HTTP codec server listening")
		if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return srv, errCh, nil
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}
		c.Set(requestIDKey, id.String())
		c.Header(RequestIDHeader, id.String())
		c.Next()
	}
}

func accessLog(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("requestId", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	}
}

func (h *handler) readBody(c *gin.Context) (string, bool) {
	bb, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		return "", false
	}
	return string(bb), true
}

func (h *handler) encode(c *gin.Context) {
	text, ok := h.readBody(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.codec.Encode(text)))
}

func (h *handler) decode(c *gin.Context) {
	text, ok := h.readBody(c)
	if !ok {
		return
	}

	if c.Query("lenient") == "true" {
		if !encoding.IsValidURLEncoding(text) {
			h.logger.Debug().Str("requestId", c.GetString(requestIDKey)).Msg("Lenient decode kept malformed escapes")
		}
		c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(h.codec.DecodeLenient(text)))
		return
	}

	decoded, err := h.codec.Decode(text)
	if err != nil {
		h.rejected(c, "decode", err)
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(decoded))
}

func (h *handler) decodeForm(c *gin.Context) {
	d := encoding.NewFormDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes), h.codec)
	pairs := []formPair{}
	for {
		k, v, err := d.Next()
		if err == io.EOF {
			break
		}

		var ferr *encoding.FieldError
		if errors.As(err, &ferr) {
			h.rejected(c, "formdecode", err)
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
			return
		}

		pairs = append(pairs, formPair{Key: k, Val: v})
	}
	c.JSON(http.StatusOK, pairs)
}

func (h *handler) rejected(c *gin.Context, operation string, err error) {
	requestID := c.GetString(requestIDKey)
	if h.rl != nil {
		h.rl.DecodeRejected(logging.Rejection{RequestID: requestID, Transport: "http", Operation: operation, Err: err})
	}

	body := gin.H{"error": err.Error()}
	var merr *encoding.MalformedEncodingError
	if errors.As(err, &merr) {
		body["position"] = merr.Pos
	}
	var ferr *encoding.FieldError
	if errors.As(err, &ferr) {
		body["pair"] = ferr.Index
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, body)
}
