package pages

import (
	"net/http"

	"modularcloset_server/handling"
	"modularcloset_server/lib"
	"modularcloset_server/structs"

	"github.com/MonkyMars/gecho"
)

// FetchHomePage handles GET /pages/home. A failed required section fails
// the whole page; clients get an error view, never a partial one.
func (prm *PageRoutesManager) FetchHomePage(w http.ResponseWriter, r *http.Request) {
	page, err := prm.pagesService.Home(r.Context())
	if err != nil {
		handling.HandleError(err, "error.pages.homeFailed", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// FetchContractorsPage handles GET /pages/contractors.
func (prm *PageRoutesManager) FetchContractorsPage(w http.ResponseWriter, r *http.Request) {
	page, err := prm.pagesService.Contractors(r.Context())
	if err != nil {
		handling.HandleError(err, "error.pages.contractorsFailed", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(page),
		gecho.Send(),
	)
}

// SubmitContractorInquiry handles POST /pages/contractors/inquiry,
// forwarding a validated lead to the sales inbox.
func (prm *PageRoutesManager) SubmitContractorInquiry(w http.ResponseWriter, r *http.Request) {
	inquiry, err := lib.ExtractAndValidateBody[structs.ContractorInquiry](r)
	if err != nil {
		handling.HandleError(err, "error.pages.invalidInquiry", prm.logger, w)
		return
	}

	if err := prm.emailService.SendContractorInquiry(inquiry); err != nil {
		handling.HandleError(err, "error.pages.inquiryFailed", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("success.pages.inquiryReceived"),
		gecho.Send(),
	)
}
