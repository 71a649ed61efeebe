// Package prompt builds the instruction text sent to conversation
// participants and to the judge model.
package prompt

import (
	"fmt"
	"strings"
)

// Character builds the system prompt establishing a participant's
// persona. The emotion-prefixed dialogue format ("Say Confused: ...")
// is what the downstream speech layer parses for delivery style.
func Character(name, description, topic string, otherNames []string, additional string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "act as a %s, named as %s, and talk about %s. ", description, name, topic)
	b.WriteString(`the dialogues should be like the examples given ` +
		`"Say Confused: the data shows people are choosing veganism, I wonder why" ` +
		`"Say happy: I have passed the test!" ` +
		`"Say imitating: Let the bygones be bygones" ` +
		`only give one dialogue. `)
	fmt.Fprintf(&b, "This is a group conversation but only give dialogues for %s. ", name)
	fmt.Fprintf(&b, "the other characters are %s. ", strings.Join(otherNames, ", "))
	b.WriteString("only include emotion and dialogue, no action, just like the examples, " +
		"also don't include the speaker name at start. Only give a single dialogue.")

	if additional != "" {
		b.WriteString(" ")
		b.WriteString(additional)
	}
	return b.String()
}

// moderatorExamples shows the moderator the expected output format.
const moderatorExamples = "just like the examples\n" +
	"\"Say Happily: Welcome guys and mom, thank you for being here.\"\n" +
	"\"Say doubtfully: let me check the internet and make it sure\"\n" +
	"\"Say sympathetically: so that's the end\"\n"

// Intro builds the moderator's opening instruction.
func Intro(moderatorName, moderatorDescription string, others []string, topic string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "you are a moderator named %s, a %s, and there are other characters named %s. ",
		moderatorName, moderatorDescription, strings.Join(others, ", "))
	fmt.Fprintf(&b, "generate an introductory dialogue for a conversation between them about %s. ", topic)
	b.WriteString(moderatorExamples)
	b.WriteString("only generate a single dialogue for the moderator")
	return b.String()
}

// Conclusion builds the moderator's closing instruction. The transcript
// is appended so the moderator can summarize what was actually said.
func Conclusion(moderatorName, moderatorDescription string, others []string, topic string, transcript []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "you are a moderator named %s, a %s, and there are other characters named %s. ",
		moderatorName, moderatorDescription, strings.Join(others, ", "))
	fmt.Fprintf(&b, "generate a conclusion dialogue for the conversation about %s. ", topic)
	b.WriteString(moderatorExamples)
	b.WriteString("the full dialogue is given below, create a single dialogue concluding most of the valid points spoken\n")
	for _, line := range transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Apology instructs an interrupting speaker to cut their point short
// and yield to the interrupted participant.
func Apology(interruptedName, interruptedDescription string) string {
	return "just begin to say a dialogue but you realized you interrupted another speaker, " +
		"so stop your point and apologize for interrupting another speaker and politely tell " +
		"that person to continue talking, create a very short dialogue, the interrupted person is " +
		interruptedName + ":" + interruptedDescription
}

// CalmInstruction is the moderator intervention used when the previous
// speaker showed distress.
func CalmInstruction() string {
	return "generate a dialogue to calm the previous speaker"
}

// ModeratorQuestion is the default instruction for a moderator's turn
// during the main conversation loop.
func ModeratorQuestion() string {
	return "Ask a question related to topic based on the conversation"
}

// judgeRubric is the five-metric scoring rubric given to the judge
// model, each scored from 1.0 to 5.0.
const judgeRubric = "Analyze the provided group conversation transcript based on the key metrics below. " +
	"You must use the detailed scoring rubric to assign a score from 1.0 to 5.0 for each metric.\n\n" +

	"1. Naturalness (Score out of 5.0)\nHow authentic and human-like does the dialogue sound?\n\n" +
	"5.0 (Very High): Indistinguishable from a real, spontaneous human conversation. Features natural pacing, filler words (um, like), interruptions, and self-corrections.\n\n" +
	"4.0 (High): Largely authentic and flows well, with only minor stilted or overly-perfect phrases.\n\n" +
	"3.0 (Moderate): A noticeable mix of natural and unnatural elements. Some parts feel robotic or scripted.\n\n" +
	"2.0 (Low): Predominantly unnatural and stilted. Lacks the nuances and messiness of real speech.\n\n" +
	"1.0 (Very Low): Completely robotic. Reads like a list of perfectly-formed sentences.\n\n" +

	"2. Relevance (Score out of 5.0)\nHow well do contributions relate to the current topic of conversation?\n\n" +
	"5.0 (Very High): Highly focused. Every contribution directly builds upon or logically responds to a previous point.\n\n" +
	"4.0 (High): Mostly on-topic and easy to follow, with only minor, understandable deviations.\n\n" +
	"3.0 (Moderate): A mix of relevant and irrelevant contributions. The main topic is frequently interrupted by tangents.\n\n" +
	"2.0 (Low): Frequently disjointed. Participants often talk at each other, and logical connections are missing.\n\n" +
	"1.0 (Very Low): Completely disjointed. No discernible topic or conversational thread.\n\n" +

	"3. Coherence (Score out of 5.0)\nHow logically structured is the conversation as a whole? Does it make sense from beginning to end?\n\n" +
	"5.0 (Very High): The conversation has a clear, logical structure. Arguments and ideas build on each other progressively and without contradiction.\n\n" +
	"4.0 (High): Mostly logical and well-structured. The overall thread is maintained despite minor confusing transitions.\n\n" +
	"3.0 (Moderate): Some parts are logical, while others are confusing or jumbled. The main thread of the argument is sometimes lost.\n\n" +
	"2.0 (Low): Mostly incoherent. The conversation lacks a clear direction, and arguments are poorly structured and hard to follow.\n\n" +
	"1.0 (Very Low): Completely incoherent. A random stream of consciousness where ideas and arguments do not connect in any meaningful way.\n\n" +

	"4. Engagement (Score out of 5.0)\nHow actively involved are the participants with each other?\n\n" +
	"5.0 (Very High): All participants are actively listening and contributing. They ask follow-up questions, provide affirmations (\"right,\" \"I see\"), and build on each other's ideas.\n\n" +
	"4.0 (High): Most participants are engaged. The interaction is dynamic, though there may be a quieter person or a brief lull.\n\n" +
	"3.0 (Moderate): Uneven engagement. Some participants are very involved while others are passive or seem distracted. One person might dominate without response.\n\n" +
	"2.0 (Low): Minimal engagement. Responses are short and perfunctory. Feels like a series of monologues.\n\n" +
	"1.0 (Very Low): Complete disengagement. Participants ignore each other's points. No sense of a shared conversational space.\n\n" +

	"5. Contextual-Accuracy (Score out of 5.0)\nHow factually correct are the verifiable claims made within the conversation?\n\n" +
	"5.0 (Very High): All factual statements, references to events, or data are accurate.\n\n" +
	"4.0 (High): The vast majority of facts are correct, with only minor, insignificant errors.\n\n" +
	"3.0 (Moderate): A mix of accurate and inaccurate information, where some errors may affect conclusions.\n\n" +
	"2.0 (Low): Contains significant factual errors that undermine the logic or credibility of the conversation.\n\n" +
	"1.0 (Very Low): The conversation is based almost entirely on false or misleading information.\n\n"

// JudgeRubric builds the judge prompt: rubric, required output format,
// then the transcript under analysis.
func JudgeRubric(transcript []string) string {
	var b strings.Builder

	b.WriteString(judgeRubric)
	b.WriteString("for example: \"Coherence:4.0, Relevance:5.0, Naturalness:3.0, Engagement: 4.5, Contextual-Accuracy: 3.5\" " +
		"just give like this in a single line\n\nCONVERSATION FOR ANALYSIS:\n")
	for _, line := range transcript {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
