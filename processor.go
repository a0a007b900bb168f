package attrib

import (
	"context"
	"fmt"
	"go/token"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the attr tag with sentinel
	sentinel.Tag("attr")
}

// Processor encodes records of type T as a single flat element and decodes them back.
// Every field is decoded through the same typed-then-text dispatch as Flattened.
//
// Processors are immutable after construction and safe for concurrent use.
type Processor[T any] struct {
	codec  Codec
	root   string
	strict bool

	// Field plans (immutable after construction)
	plans *typeFieldPlans
}

// typeFieldPlans holds the attribute layout of a record type.
type typeFieldPlans struct {
	typeName string
	fields   []processorFieldPlan
	names    map[string]bool
}

// processorFieldPlan describes where a single attribute lives in the record.
type processorFieldPlan struct {
	index []int  // reflect.Value.FieldByIndex access path
	name  string // Go field path for error messages
	attr  string // attribute name on the element
}

var (
	plansCache = make(map[reflect.Type]*typeFieldPlans)
	plansMu    sync.RWMutex
)

// NewProcessor creates a new Processor for record type T.
//
// T must be a struct. Its field plans are built once from attr struct tags; nested
// structs must be tagged flatten, and every leaf must be a coercible scalar.
func NewProcessor[T any](codec Codec, opts ...Option) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	o := options{root: plans.typeName}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Processor[T]{
		codec:  codec,
		root:   o.root,
		strict: o.strict,
		plans:  plans,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName, p.root)
	return p, nil
}

// ContentType returns the content type of the processor's codec.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Root returns the element name written on encode.
func (p *Processor[T]) Root() string {
	return p.root
}

// getOrBuildPlans returns cached field plans for T.
func getOrBuildPlans[T any]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()

	plansMu.RLock()
	if cached, ok := plansCache[typ]; ok {
		plansMu.RUnlock()
		return cached, nil
	}
	plansMu.RUnlock()

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	plansMu.Lock()
	defer plansMu.Unlock()
	plansCache[typ] = plans
	return plans, nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T any]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, newConfigError(ErrInvalidTag, typ.String(), "records must be structs")
	}

	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
		names:    make(map[string]bool),
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive processes fields, descending into flattened structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex []int, namePrefix string) error {
	for _, field := range spec.Fields {
		if !token.IsExported(field.Name) {
			continue
		}

		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		attrName, flatten := parseAttrTag(field.Tags["attr"])
		if attrName == "-" {
			continue
		}

		if flatten {
			if field.ReflectType.Kind() != reflect.Struct {
				return newConfigError(ErrInvalidTag, fullName, "flatten requires a struct field")
			}
			nestedSpec := scanNestedType(field.ReflectType)
			if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, fullName); err != nil {
				return err
			}
			continue
		}

		if !supported(field.ReflectType) {
			return newConfigError(ErrInvalidTag, fullName,
				fmt.Sprintf("%s is not an attribute scalar", field.ReflectType))
		}

		if attrName == "" {
			attrName = field.Name
		}
		if plans.names[attrName] {
			return newConfigError(ErrInvalidTag, fullName, fmt.Sprintf("duplicate attribute %q", attrName))
		}
		plans.names[attrName] = true

		plans.fields = append(plans.fields, processorFieldPlan{
			index: fullIndex,
			name:  fullName,
			attr:  attrName,
		})
	}

	return nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup("attr"); ok {
			fm.Tags["attr"] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseAttrTag splits an attr tag into its name and flatten option.
func parseAttrTag(tag string) (name string, flatten bool) {
	name, opts, _ := strings.Cut(tag, ",")
	for _, opt := range strings.Split(opts, ",") {
		if opt == "flatten" {
			flatten = true
		}
	}
	return name, flatten
}

// Flatten lays obj out as an element named after the processor's root.
func (p *Processor[T]) Flatten(obj *T) (*Element, error) {
	if obj == nil {
		return nil, fmt.Errorf("%w: nil record", ErrMarshal)
	}

	el := &Element{Name: p.root}

	// Check for override interface
	if m, ok := any(obj).(AttrsMarshaler); ok {
		attrs, err := m.MarshalAttrs()
		if err != nil {
			return nil, err
		}
		for _, a := range attrs {
			if err := el.Add(a.Name, a.Value); err != nil {
				return nil, err
			}
		}
		return el, nil
	}

	rv := reflect.ValueOf(obj).Elem()
	el.Attrs = make([]Attr, 0, len(p.plans.fields))
	for _, plan := range p.plans.fields {
		el.Attrs = append(el.Attrs, Attr{
			Name:  plan.attr,
			Value: rv.FieldByIndex(plan.index).Interface(),
		})
	}
	return el, nil
}

// Unflatten rebuilds a record from a decoded element.
func (p *Processor[T]) Unflatten(el *Element) (*T, error) {
	if p.strict {
		for _, a := range el.Attrs {
			if !p.plans.names[a.Name] {
				return nil, &FieldError{Field: a.Name, Err: ErrUnknownAttr}
			}
		}
	}

	var obj T

	// Check for override interface
	if u, ok := any(&obj).(AttrsUnmarshaler); ok {
		if err := u.UnmarshalAttrs(el); err != nil {
			return nil, err
		}
		return &obj, nil
	}

	rv := reflect.ValueOf(&obj).Elem()
	for _, plan := range p.plans.fields {
		src, ok := el.Lookup(plan.attr)
		if !ok {
			return nil, &FieldError{Field: plan.attr, Err: ErrMissingAttr}
		}
		if _, err := resolve(rv.FieldByIndex(plan.index), src); err != nil {
			return nil, &FieldError{Field: plan.attr, Err: err}
		}
	}

	return &obj, nil
}

// Encode flattens obj and marshals it with the processor's codec.
func (p *Processor[T]) Encode(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.plans.typeName)

	var retErr error
	var retData []byte
	var attrs int
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.plans.typeName,
			len(retData), time.Since(start), attrs, retErr)
	}()

	el, err := p.Flatten(obj)
	if err != nil {
		retErr = fmt.Errorf("flatten: %w", err)
		return nil, retErr
	}
	attrs = len(el.Attrs)

	data, err := p.codec.Marshal(el)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// Decode unmarshals data with the processor's codec and rebuilds the record.
func (p *Processor[T]) Decode(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.codec.ContentType(), p.plans.typeName, len(data))

	var retErr error
	var attrs, text int
	defer func() {
		emitDecodeComplete(ctx, p.codec.ContentType(), p.plans.typeName,
			time.Since(start), attrs, text, retErr)
	}()

	var el Element
	if err := p.codec.Unmarshal(data, &el); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}
	attrs, text = len(el.Attrs), el.TextCount()

	if el.Name != "" && el.Name != p.root {
		retErr = fmt.Errorf("%w: got %q, want %q", ErrRootMismatch, el.Name, p.root)
		return nil, retErr
	}

	obj, err := p.Unflatten(&el)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	return obj, nil
}
