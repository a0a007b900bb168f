package attrib

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for attrib events.
var (
	SignalProcessorCreated = capitan.NewSignal("attrib.processor.created", "Processor instantiated")
	SignalEncodeStart      = capitan.NewSignal("attrib.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("attrib.encode.complete", "Encode operation finished")
	SignalDecodeStart      = capitan.NewSignal("attrib.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("attrib.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyRoot        = capitan.NewStringKey("root")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
	KeyAttrCount   = capitan.NewIntKey("attr_count")
	KeyTextCount   = capitan.NewIntKey("text_count")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName, root string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyRoot.Field(root),
	)
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, attrs int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyAttrCount.Field(attrs),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
// text counts attributes that arrived as residual text rather than typed values.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, attrs, text int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyAttrCount.Field(attrs),
		KeyTextCount.Field(text),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
