package typescript

import (
	"strings"
	"testing"

	"protots/gen/ir"
)

// statusDescriptor declares all three members so no synthetic handling
// applies unless a test removes one.
func statusDescriptor() *ir.EnumDescriptor {
	return &ir.EnumDescriptor{
		Name: "Status",
		Values: []ir.EnumValue{
			{Name: "UNSPECIFIED", Number: 0},
			{Name: "ACTIVE", Number: 1},
			{Name: "DONE", Number: 2},
		},
	}
}

func statusCatalog() ir.EnumCatalog {
	return ir.EnumCatalog{
		{Name: "UNSPECIFIED", Number: 0},
		{Name: "ACTIVE", Number: 1},
		{Name: "DONE", Number: 2},
	}
}

func renderEnum(t *testing.T, cfg Config, desc *ir.EnumDescriptor, catalog ir.EnumCatalog, withTable bool) string {
	t.Helper()
	e := NewEmitter(cfg, nil)
	f := NewFile("test.ts")
	e.EmitEnum(f, desc, catalog)
	if withTable {
		e.EmitTranslationTable(f, desc, catalog)
	}
	return string(f.Render())
}

func TestEmitEnum(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		desc    *ir.EnumDescriptor
		catalog ir.EnumCatalog
		want    []string
		notWant []string
	}{
		{
			name:    "basic declaration in catalog order",
			cfg:     Config{EmitComments: true},
			desc:    statusDescriptor(),
			catalog: statusCatalog(),
			want: []string{
				"export enum Status {",
				"  UNSPECIFIED = 0,\n  ACTIVE = 1,\n  DONE = 2,\n}",
			},
			notWant: []string{"/**", "const"},
		},
		{
			name:    "const enum style",
			cfg:     Config{ConstEnum: true},
			desc:    statusDescriptor(),
			catalog: statusCatalog(),
			want:    []string{"export const enum Status {"},
		},
		{
			name: "declared member comment emitted verbatim",
			cfg:  Config{EmitComments: true},
			desc: &ir.EnumDescriptor{
				Name: "Status",
				Values: []ir.EnumValue{
					{Name: "UNSPECIFIED", Number: 0},
					{Name: "ACTIVE", Number: 1, Documentation: ir.Documentation{Body: "The job is running."}},
				},
			},
			catalog: ir.EnumCatalog{{Name: "UNSPECIFIED", Number: 0}, {Name: "ACTIVE", Number: 1}},
			want:    []string{"/** The job is running. */\n  ACTIVE = 1,"},
		},
		{
			name: "synthetic zero entry gets the fixed notice",
			cfg:  Config{EmitComments: true},
			desc: &ir.EnumDescriptor{
				Name: "Status",
				Values: []ir.EnumValue{
					{Name: "ACTIVE", Number: 1},
				},
			},
			catalog: ir.EnumCatalog{{Name: "UNSPECIFIED", Number: 0}, {Name: "ACTIVE", Number: 1}},
			want: []string{
				syntheticZeroComment,
				"UNSPECIFIED = 0,",
			},
		},
		{
			name: "type comment appended to the declaration",
			cfg:  Config{EmitComments: true},
			desc: &ir.EnumDescriptor{
				Name:          "Status",
				Values:        []ir.EnumValue{{Name: "ACTIVE", Number: 0}},
				Documentation: ir.Documentation{Body: "Lifecycle states."},
			},
			catalog: ir.EnumCatalog{{Name: "ACTIVE", Number: 0}},
			want:    []string{"/** Lifecycle states. */\nexport enum Status {"},
		},
		{
			name: "comments disabled",
			cfg:  Config{},
			desc: &ir.EnumDescriptor{
				Name: "Status",
				Values: []ir.EnumValue{
					{Name: "ACTIVE", Number: 0, Documentation: ir.Documentation{Body: "running"}},
				},
				Documentation: ir.Documentation{Body: "Lifecycle states."},
			},
			catalog: ir.EnumCatalog{{Name: "ACTIVE", Number: 0}},
			notWant: []string{"/**", "running", "Lifecycle"},
		},
		{
			name:    "anonymous enum uses the fallback name",
			cfg:     Config{},
			desc:    &ir.EnumDescriptor{Values: []ir.EnumValue{{Name: "ACTIVE", Number: 0}}},
			catalog: ir.EnumCatalog{{Name: "ACTIVE", Number: 0}},
			want:    []string{"export enum UnnamedEnum {"},
		},
		{
			name:    "catalog name wins over declared name",
			cfg:     Config{},
			desc:    statusDescriptor(),
			catalog: ir.EnumCatalog{{Name: "IDLE", Number: 0}},
			want:    []string{"IDLE = 0,"},
			notWant: []string{"UNSPECIFIED"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderEnum(t, tt.cfg, tt.desc, tt.catalog, false)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, got)
				}
			}
		})
	}
}

func TestEmitTranslationTable(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		desc    *ir.EnumDescriptor
		catalog ir.EnumCatalog
		want    []string
		notWant []string
	}{
		{
			name:    "humanized defaults in catalog order",
			cfg:     Config{},
			desc:    statusDescriptor(),
			catalog: statusCatalog(),
			want: []string{
				"export const StatusTranslation = [",
				"  { id: Status.UNSPECIFIED, name: \"Unspecified\" },\n" +
					"  { id: Status.ACTIVE, name: \"Active\" },\n" +
					"  { id: Status.DONE, name: \"Done\" },\n" +
					"] as const;",
			},
		},
		{
			name: "directive override used verbatim",
			cfg:  Config{},
			desc: &ir.EnumDescriptor{
				Name: "Status",
				Values: []ir.EnumValue{
					{Name: "READY_TO_START", Number: 0, Documentation: ir.Documentation{Body: "@Translate: GoTime"}},
				},
			},
			catalog: ir.EnumCatalog{{Name: "READY_TO_START", Number: 0}},
			want:    []string{`{ id: Status.READY_TO_START, name: "GoTime" },`},
			notWant: []string{"Ready To Start"},
		},
		{
			name: "malformed directive falls back to humanized label",
			cfg:  Config{},
			desc: &ir.EnumDescriptor{
				Name: "Status",
				Values: []ir.EnumValue{
					{Name: "READY_TO_START", Number: 0, Documentation: ir.Documentation{Body: "@Translate: "}},
				},
			},
			catalog: ir.EnumCatalog{{Name: "READY_TO_START", Number: 0}},
			want:    []string{`name: "Ready To Start"`},
		},
		{
			name: "synthetic entry has no comment and humanizes its name",
			cfg:  Config{},
			desc: &ir.EnumDescriptor{
				Name:   "Status",
				Values: []ir.EnumValue{{Name: "ACTIVE", Number: 1}},
			},
			catalog: ir.EnumCatalog{{Name: "UNSPECIFIED", Number: 0}, {Name: "ACTIVE", Number: 1}},
			want:    []string{`{ id: Status.UNSPECIFIED, name: "Unspecified" },`},
		},
		{
			name:    "anonymous enum table uses the fallback name",
			cfg:     Config{},
			desc:    &ir.EnumDescriptor{Values: []ir.EnumValue{{Name: "ACTIVE", Number: 0}}},
			catalog: ir.EnumCatalog{{Name: "ACTIVE", Number: 0}},
			want:    []string{"export const UnnamedEnumTranslation = [", "id: UnnamedEnum.ACTIVE"},
		},
		{
			name:    "configured fallback name",
			cfg:     Config{AnonymousEnumName: "Hidden"},
			desc:    &ir.EnumDescriptor{Values: []ir.EnumValue{{Name: "ACTIVE", Number: 0}}},
			catalog: ir.EnumCatalog{{Name: "ACTIVE", Number: 0}},
			want:    []string{"export const HiddenTranslation = ["},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEmitter(tt.cfg, nil)
			f := NewFile("test.ts")
			e.EmitTranslationTable(f, tt.desc, tt.catalog)
			got := string(f.Render())
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(got, notWant) {
					t.Errorf("output should not contain %q:\n%s", notWant, got)
				}
			}
		})
	}
}

// Reserved words are legal as enum member names and as property
// accesses, so a member like "delete" stays verbatim in the
// declaration and the table reference resolves against it. Only the
// enum name itself gets escaped.
func TestEmitEnumReservedWordMember(t *testing.T) {
	desc := &ir.EnumDescriptor{
		Name: "Action",
		Values: []ir.EnumValue{
			{Name: "delete", Number: 0},
			{Name: "new", Number: 1},
		},
	}
	catalog := ir.EnumCatalog{
		{Name: "delete", Number: 0},
		{Name: "new", Number: 1},
	}

	out := renderEnum(t, Config{}, desc, catalog, true)

	for _, want := range []string{
		"  delete = 0,",
		"  new = 1,",
		`{ id: Action.delete, name: "Delete" },`,
		`{ id: Action.new, name: "New" },`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, notWant := range []string{"delete_", "new_"} {
		if strings.Contains(out, notWant) {
			t.Errorf("output should not contain %q:\n%s", notWant, out)
		}
	}

	reserved := &ir.EnumDescriptor{
		Name:   "delete",
		Values: []ir.EnumValue{{Name: "NONE", Number: 0}},
	}
	reservedCatalog := ir.EnumCatalog{{Name: "NONE", Number: 0}}
	out = renderEnum(t, Config{}, reserved, reservedCatalog, true)
	for _, want := range []string{
		"export enum delete_ {",
		"export const delete_Translation = [",
		"{ id: delete_.NONE,",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

// Both outputs always carry one line per catalog entry, in catalog order.
func TestEnumOutputsMatchCatalogLength(t *testing.T) {
	desc := &ir.EnumDescriptor{
		Name:   "Status",
		Values: []ir.EnumValue{{Name: "ACTIVE", Number: 1}, {Name: "DONE", Number: 2}},
	}
	catalog := ir.EnumCatalog{
		{Name: "UNSPECIFIED", Number: 0},
		{Name: "ACTIVE", Number: 1},
		{Name: "DONE", Number: 2},
	}

	out := renderEnum(t, Config{}, desc, catalog, true)

	tableStart := strings.Index(out, "export const ")
	if tableStart < 0 {
		t.Fatalf("no translation table emitted:\n%s", out)
	}
	if got := strings.Count(out[:tableStart], " = "); got != len(catalog) {
		t.Errorf("declaration has %d members, want %d:\n%s", got, len(catalog), out)
	}
	if got := strings.Count(out, "{ id: "); got != len(catalog) {
		t.Errorf("table has %d entries, want %d:\n%s", got, len(catalog), out)
	}

	// Declaration precedes the table.
	if strings.Index(out, "export enum Status") > strings.Index(out, "StatusTranslation") {
		t.Errorf("declaration should precede the translation table:\n%s", out)
	}
}
