package errors

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorTaxonomy(t *testing.T) {
	Convey("Given a wrapped extraction error", t, func() {
		cause := fmt.Errorf("connection refused")
		err := &ExtractionError{Err: cause}

		Convey("The cause stays reachable through Unwrap", func() {
			So(errors.Is(err, cause), ShouldBeTrue)
		})

		Convey("The message names the failing stage", func() {
			So(err.Error(), ShouldContainSubstring, "extraction failed")
			So(err.Error(), ShouldContainSubstring, "connection refused")
		})
	})

	Convey("Given a malformed output error with missing keys", t, func() {
		err := &MalformedOutputError{
			Raw:     `{"category": "Semantic"}`,
			Missing: []string{"name", "properties", "relationships"},
		}

		Convey("The message lists the missing keys", func() {
			So(err.Error(), ShouldContainSubstring, "missing keys")
			So(err.Error(), ShouldContainSubstring, "name")
		})
	})

	Convey("Given a chain wrapped through multiple stages", t, func() {
		cause := fmt.Errorf("bad payload")
		malformed := &MalformedOutputError{Raw: "{}", Err: cause}
		extraction := &ExtractionError{Err: malformed}

		Convey("errors.As reaches every layer", func() {
			var gotMalformed *MalformedOutputError
			So(errors.As(extraction, &gotMalformed), ShouldBeTrue)
			So(gotMalformed.Raw, ShouldEqual, "{}")
		})

		Convey("errors.Is reaches the root cause", func() {
			So(errors.Is(extraction, cause), ShouldBeTrue)
		})
	})

	Convey("Each stage error unwraps to its cause", t, func() {
		cause := fmt.Errorf("boom")

		So(errors.Is(&IngestionError{Err: cause}, cause), ShouldBeTrue)
		So(errors.Is(&RetrievalError{Err: cause}, cause), ShouldBeTrue)
		So(errors.Is(&AnswerError{Err: cause}, cause), ShouldBeTrue)
	})
}
