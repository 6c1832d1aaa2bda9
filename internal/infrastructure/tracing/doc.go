/*
Package tracing provides lightweight request tracing.

# Overview

Every HTTP request and IPC invocation gets a span carrying a trace ID. The
trace ID is taken from the X-Trace-ID header when the front end supplies one,
echoed back in the response, and attached to completed spans which a
collector goroutine writes to the log.

# Usage

	tracer := tracing.New("blinkmd", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "ipc.open_file")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()
*/
package tracing
