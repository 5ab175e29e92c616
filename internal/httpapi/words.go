package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tungbeier/number-to-word/numwords"
)

type wordsHandler struct {
	limit    numwords.Limit
	signWord string
}

// wordsResponse is the body of a successful GET /v1/words/{number}.
type wordsResponse struct {
	Number  int64  `json:"number"`
	Grouped string `json:"grouped"`
	Words   string `json:"words"`
	Limit   string `json:"limit"`
}

func (h *wordsHandler) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw := strings.TrimSpace(chi.URLParam(r, "number"))
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(ctx, w, newError("invalid_number",
			fmt.Sprintf("%q is not a 64-bit integer", raw), http.StatusBadRequest))
		return
	}

	words, err := numwords.SpeakWithin(n, h.limit)
	if err != nil {
		if errors.Is(err, numwords.ErrUnsupportedNumber) {
			writeError(ctx, w, newError("unsupported_number", err.Error(), http.StatusUnprocessableEntity))
			return
		}
		writeError(ctx, w, newError("internal_server_error", "internal server error", http.StatusInternalServerError))
		return
	}

	if signed, _ := strconv.ParseBool(r.URL.Query().Get("signed")); signed && n < 0 && h.signWord != "" {
		words = h.signWord + " " + words
	}

	writeJSON(w, http.StatusOK, wordsResponse{
		Number:  n,
		Grouped: groupDigits(n),
		Words:   words,
		Limit:   h.limit.String(),
	})
}

// groupDigits formats n with English thousands separators.
func groupDigits(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}
