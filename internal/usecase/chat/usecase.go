package chat

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"investiq/internal/domain/investor"
)

// Completer is the question-answering gateway: one chat completion under a
// fixed model and temperature.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Usecase struct {
	repo investor.Repository
	llm  Completer
}

func NewUsecase(r investor.Repository, llm Completer) *Usecase {
	return &Usecase{repo: r, llm: llm}
}

const (
	// Returned as the whole context document when the table is empty.
	NoDataSentinel = "אין משקיעים במערכת"

	systemPrompt = `אתה עוזר חכם לניהול משקיעים בישראל.
ענה רק על בסיס הנתונים שהמשתמש נותן לך.
אם לא יש מידע רלוונטי - אמור 'אין לי מידע כזה'.
תמיד ענה בעברית.
הנתונים שלך הם פרטיים של המשתמש - אל תחשוף אותם.`
)

// formatAmount keeps a trailing .0 on whole amounts so the rendered document
// matches what the records always looked like to the model.
func formatAmount(f float64) string {
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// BuildContext renders the full record set as a labeled plain-text document
// for the LLM. Pure and deterministic given the input order.
func BuildContext(list []investor.Investor) string {
	if len(list) == 0 {
		return NoDataSentinel
	}

	var b strings.Builder
	b.WriteString("נתוני המשקיעים:\n\n")
	for i := range list {
		inv := &list[i]
		notes := "אין"
		if inv.Notes != nil && *inv.Notes != "" {
			notes = *inv.Notes
		}
		b.WriteString("\nID: " + strconv.FormatUint(inv.ID, 10) + "\n")
		b.WriteString("שם: " + inv.FullName + "\n")
		b.WriteString("מס' זהות: " + inv.IDNumber + "\n")
		b.WriteString("אימייל: " + inv.Email + "\n")
		b.WriteString("טלפון: " + inv.Phone + "\n")
		b.WriteString("סכום השקעה: ₪" + formatAmount(inv.InvestmentAmount) + "\n")
		b.WriteString("תאריך התחלה: " + inv.StartDate.Format("2006-01-02") + "\n")
		b.WriteString("סוג משקיע: " + inv.InvestorType + "\n")
		b.WriteString("הערות: " + notes + "\n")
		b.WriteString("---\n")
	}
	return b.String()
}

// Ask forwards the full record set plus the question to the gateway and
// returns its textual answer. Read-only over the investor data.
func (u *Usecase) Ask(ctx context.Context, question string) (string, error) {
	list, err := u.repo.ListAll(ctx)
	if err != nil {
		return "", err
	}

	user := fmt.Sprintf("הנתונים שלי:\n%s\n\nהשאלה שלי:\n%s", BuildContext(list), question)
	return u.llm.Complete(ctx, systemPrompt, user)
}
