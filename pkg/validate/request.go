package validate

import (
	"net/http"
	"strconv"

	"github.com/GlebRadaev/digimon/pkg/paginate"
	"github.com/GlebRadaev/digimon/pkg/utils"
)

// DecodeRequest decodes the JSON body into dst and validates it. On failure it
// writes a 422 reply and returns false.
func DecodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.RespondWithValidationError(w, map[string]string{"body": err.Error()})
		return false
	}
	if fields := Struct(dst); fields != nil {
		utils.RespondWithValidationError(w, fields)
		return false
	}
	return true
}

// PathID reads the {id} path parameter, replying 422 when it is not a positive integer.
func PathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := utils.IntURLParam(r, "id")
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"id": err.Error()})
		return 0, false
	}
	return id, true
}

// Page reads the ?page= query parameter. Pages below one become the first page;
// a non-integer or a page past paginate.MaxPage is answered with 422.
func Page(w http.ResponseWriter, r *http.Request) (int, bool) {
	page, err := utils.PageQuery(r)
	if err != nil {
		utils.RespondWithValidationError(w, map[string]string{"page": err.Error()})
		return 0, false
	}
	if page > paginate.MaxPage {
		utils.RespondWithValidationError(w, map[string]string{
			"page": "page must not exceed " + strconv.Itoa(paginate.MaxPage),
		})
		return 0, false
	}
	return paginate.Normalize(page), true
}
