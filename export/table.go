package export

import (
	"fmt"
	"io"
	"sentiment-chatbot/domain"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// RenderAnalysis prints the message-level sentiment table of a conversation.
func RenderAnalysis(w io.Writer, conv *domain.Conversation) {
	table := newTable(w, []string{"Message #", "User message", "User sentiment", "Sentiment score", "Bot reply"})
	for i, turn := range conv.Turns() {
		table.Append([]string{
			strconv.Itoa(i + 1),
			turn.UserText,
			turn.Label.String(),
			fmt.Sprintf("%.3f", turn.Score),
			turn.BotReply,
		})
	}
	table.Render()
}

// RenderHistory prints one row per stored conversation.
func RenderHistory(w io.Writer, records []Record) {
	table := newTable(w, []string{"Chat", "ID", "Ended", "Messages", "Overall", "Mood trend"})
	for i, r := range records {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.ID.String()[:8],
			r.EndedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(len(r.History)),
			r.Overall,
			r.Trend,
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
