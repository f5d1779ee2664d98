package segment

import "strings"

// SplitTranscript tokenizes the text by whitespace and groups consecutive
// words into chunks of at most maxWords, each chunk joined by single spaces.
// Joining all chunks with single spaces reproduces the transcript with
// whitespace runs normalized. Blank text yields no chunks.
func SplitTranscript(text string, maxWords int) []string {
	words := strings.Fields(text)

	var chunks []string
	for len(words) > 0 {
		n := maxWords
		if n > len(words) {
			n = len(words)
		}
		chunks = append(chunks, strings.Join(words[:n], " "))
		words = words[n:]
	}

	return chunks
}
