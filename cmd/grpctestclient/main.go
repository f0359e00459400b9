package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"urlencoder/grpc"
	pb "urlencoder/proto"

	"github.com/golang/protobuf/jsonpb"
	"github.com/golang/protobuf/proto"
	"github.com/google/uuid"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// A command line utility to send test requests to the codec server
func main() {
	// Parse command line args
	grpcHostArg := flag.String("grpchost", "localhost:37291", "codec gRPC host to send the request to.")
	decodeArg := flag.Bool("d", false, "decode the text instead of encoding it.")
	timeoutArg := flag.Duration("timeout", 5*time.Second, "deadline for the call.")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: grpctestclient [-grpchost host:port] [-d] <text>...\n")
	}

	// Establish gRPC connection
	conn, err := grpclib.Dial(*grpcHostArg, grpclib.WithInsecure())
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer conn.Close()
	client := pb.NewCodecServiceClient(conn)

	reqID := uuid.New().String()
	ctx, cancel := context.WithTimeout(context.Background(), *timeoutArg)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, grpc.RequestIDKey, reqID)
	log.Printf("sending request %v", reqID)

	var reply proto.Message
	switch {
	case flag.NArg() > 1 && *decodeArg:
		reply, err = client.DecodeBatch(ctx, &pb.BatchRequest{Texts: flag.Args()})
	case flag.NArg() > 1:
		reply, err = client.EncodeBatch(ctx, &pb.BatchRequest{Texts: flag.Args()})
	case *decodeArg:
		reply, err = client.Decode(ctx, &pb.DecodeRequest{Text: flag.Arg(0)})
	default:
		reply, err = client.Encode(ctx, &pb.EncodeRequest{Text: flag.Arg(0)})
	}
	if err != nil {
		log.Fatalf("call failed: %v", err)
	}

	m := jsonpb.Marshaler{Indent: "  "}
	s, err := m.MarshalToString(reply)
	if err != nil {
		log.Fatalf("%v", err)
	}
	fmt.Println(s)
}
