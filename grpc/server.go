package grpc

import (
	"context"
	"net"

	"urlencoder/batch"
	"urlencoder/encoding"
	"urlencoder/logging"
	pb "urlencoder/proto"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// RequestIDKey is the metadata key a client may use to pass its own request ID.
const RequestIDKey = "x-request-id"

// Server serves the codec over gRPC.
type Server struct {
	logger     zerolog.Logger
	grpcServer *grpc.Server
}

// NewServer creates a gRPC server for the given codec. Decode failures are reported to rl.
func NewServer(logger zerolog.Logger, codec *encoding.Codec, rl logging.ResultsLogger) *Server {
	s := grpc.NewServer()
	pb.RegisterCodecServiceServer(s, &serverImpl{logger: logger, codec: codec, rl: rl})
	return &Server{logger: logger, grpcServer: s}
}

// Serve listens on the given network and address, and blocks until the server stops. Zero maxConnections means no limit.
func (s *Server) Serve(network string, address string, maxConnections int) error {
	lis, err := net.Listen(network, address)
	if err != nil {
		s.logger.Error().Err(err).Str("address", address).Msg("Failed to listen")
		return err
	}

	if maxConnections > 0 {
		lis = netutil.LimitListener(lis, maxConnections)
	}

	return s.ServeListener(lis)
}

// ServeListener serves on an existing listener.
func (s *Server) ServeListener(lis net.Listener) error {
	s.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC codec server listening")
	return s.grpcServer.Serve(lis)
}

// Stop waits for pending calls to finish and stops the server.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

type serverImpl struct {
	logger zerolog.Logger
	codec  *encoding.Codec
	rl     logging.ResultsLogger
}

func (s *serverImpl) Encode(ctx context.Context, in *pb.EncodeRequest) (*pb.EncodeResponse, error) {
	return &pb.EncodeResponse{Text: s.codec.Encode(in.Text)}, nil
}

func (s *serverImpl) Decode(ctx context.Context, in *pb.DecodeRequest) (*pb.DecodeResponse, error) {
	text, err := s.codec.Decode(in.Text)
	if err != nil {
		return nil, s.rejected(ctx, "decode", err)
	}
	return &pb.DecodeResponse{Text: text}, nil
}

func (s *serverImpl) EncodeBatch(ctx context.Context, in *pb.BatchRequest) (*pb.BatchResponse, error) {
	texts, err := batch.Encode(ctx, s.codec, in.Texts, 0)
	if err != nil {
		return nil, contextError(err)
	}
	return &pb.BatchResponse{Texts: texts}, nil
}

func (s *serverImpl) DecodeBatch(ctx context.Context, in *pb.BatchRequest) (*pb.BatchResponse, error) {
	texts, err := batch.Decode(ctx, s.codec, in.Texts, 0)
	if err != nil {
		if ctx.Err() != nil {
			return nil, contextError(ctx.Err())
		}
		return nil, s.rejected(ctx, "decodebatch", err)
	}
	return &pb.BatchResponse{Texts: texts}, nil
}

func (s *serverImpl) rejected(ctx context.Context, operation string, err error) error {
	requestID := requestIDFromContext(ctx)
	s.logger.Debug().Err(err).Str("requestId", requestID).Str("operation", operation).Msg("Rejected decode request")
	if s.rl != nil {
		s.rl.DecodeRejected(logging.Rejection{RequestID: requestID, Transport: "grpc", Operation: operation, Err: err})
	}
	return status.Error(codes.InvalidArgument, err.Error())
}

func contextError(err error) error {
	if err == context.DeadlineExceeded {
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	return status.Error(codes.Canceled, err.Error())
}

func requestIDFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDKey); len(ids) > 0 {
			if id, err := uuid.Parse(ids[0]); err == nil {
				return id.String()
			}
		}
	}
	return uuid.New().String()
}
