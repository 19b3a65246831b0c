package utils

import (
	"errors"
	"net/http"
	"pathlab-client/internal/pkg/constvars"
	"pathlab-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Response writers used by the mock backend. The production PathLab API
// returns bare DTOs (no envelope), plain text for a few endpoints and
// {"message": ...} for errors; the mock mirrors that.

func WriteJSONResponse(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func WriteTextResponse(w http.ResponseWriter, code int, message string) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func WritePDFResponse(w http.ResponseWriter, content []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
	w.WriteHeader(constvars.StatusOK)
	w.Write(content)
}

func WriteErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	message := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		message = customErr.DevMessage
		log.Error(customErr.DevMessage,
			zap.String("file", customErr.Location.File),
			zap.Int("line", customErr.Location.Line),
			zap.String("function_name", customErr.Location.FunctionName),
		)
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
