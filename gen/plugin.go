package gen

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"

	"protots/gen/provider"
)

// RunPlugin implements the protoc plugin contract: a serialized
// CodeGeneratorRequest arrives on stdin, a CodeGeneratorResponse
// leaves on stdout. Generation failures travel in the response's
// error field, not the process exit code.
func RunPlugin(ctx context.Context, stdin io.Reader, stdout io.Writer) error {
	in, err := io.ReadAll(stdin)
	if err != nil {
		return fmt.Errorf("read request: %w", err)
	}

	req := &pluginpb.CodeGeneratorRequest{}
	if err := proto.Unmarshal(in, req); err != nil {
		return fmt.Errorf("unmarshal request: %w", err)
	}

	out, err := proto.Marshal(respond(ctx, req))
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	if _, err := stdout.Write(out); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// respond generates the response for one request.
func respond(ctx context.Context, req *pluginpb.CodeGeneratorRequest) *pluginpb.CodeGeneratorResponse {
	resp := &pluginpb.CodeGeneratorResponse{
		SupportedFeatures: proto.Uint64(uint64(pluginpb.CodeGeneratorResponse_FEATURE_PROTO3_OPTIONAL)),
	}
	files, err := generateRequest(ctx, req)
	if err != nil {
		resp.Error = proto.String(err.Error())
		return resp
	}
	resp.File = files
	return resp
}

func generateRequest(ctx context.Context, req *pluginpb.CodeGeneratorRequest) ([]*pluginpb.CodeGeneratorResponse_File, error) {
	cfg, err := ParseParameter(req.GetParameter())
	if err != nil {
		return nil, err
	}

	reg, err := protodesc.NewFiles(&descriptorpb.FileDescriptorSet{File: req.GetProtoFile()})
	if err != nil {
		return nil, fmt.Errorf("resolve descriptors: %w", err)
	}

	fds := make([]protoreflect.FileDescriptor, 0, len(req.GetFileToGenerate()))
	for _, path := range req.GetFileToGenerate() {
		fd, err := reg.FindFileByPath(path)
		if err != nil {
			return nil, fmt.Errorf("file to generate %q: %w", path, err)
		}
		fds = append(fds, fd)
	}

	out := &responseSink{}
	if _, err := generateSchema(ctx, cfg, provider.FromFiles(fds), out); err != nil {
		return nil, err
	}
	return out.files, nil
}

// responseSink collects generated files directly into response
// messages, preserving generation order.
type responseSink struct {
	files []*pluginpb.CodeGeneratorResponse_File
}

func (s *responseSink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.files = append(s.files, &pluginpb.CodeGeneratorResponse_File{
		Name:    proto.String(path),
		Content: proto.String(string(content)),
	})
	return nil
}
