// Package prototest compiles in-memory .proto sources for tests.
package prototest

import (
	"context"
	"sort"
	"testing"

	"github.com/bufbuild/protocompile"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Compile compiles the given sources (path to content) with source info
// enabled and returns the descriptors for paths. With no explicit
// paths, every source file is compiled, in path order.
func Compile(t *testing.T, sources map[string]string, paths ...string) []protoreflect.FileDescriptor {
	t.Helper()

	if len(paths) == 0 {
		for p := range sources {
			paths = append(paths, p)
		}
		sort.Strings(paths)
	}

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(sources),
		}),
		SourceInfoMode: protocompile.SourceInfoStandard,
	}
	files, err := compiler.Compile(context.Background(), paths...)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	fds := make([]protoreflect.FileDescriptor, len(files))
	for i, f := range files {
		fds[i] = f
	}
	return fds
}
