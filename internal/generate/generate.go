// Copyright (c) 2026 Diwan. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package generate asks an external chat-completion model to compose verses on
a reader-chosen topic.

The model is reached through an OpenAI-compatible endpoint (DeepSeek by
default). Every failure, whether transport, status or an empty answer,
reaches the reader as one localized message. Requests are never retried
automatically.
*/
package generate

// Messages sent to the model.
const (
	systemPrompt = "أنت شاعر عربي مبدع تكتب أبياتًا باللغة العربية الفصحى حسب الغرض الشعري المطلوب. " +
		"عليك أن تكتب بيتين على الأقل، مع الالتزام بالوزن والقافية إذا كان الطلب للشعر العمودي."

	userPromptFormat = "اكتب أبيات شعر من نوع %s"
)

// Reader-facing messages.
const (
	messageTopicRequired = "الرجاء إدخال موضوع للشعر"
	messageTopicTooLong  = "موضوع الشعر طويل جدًا"
	messageFailed        = "فشل في توليد الشعر. الرجاء المحاولة مرة أخرى."
	messageUnavailable   = "خدمة توليد الشعر غير مفعلة"
)

// maxTopicLength bounds the topic embedded in the prompt.
const maxTopicLength = 200

// Request is the body of POST /generate.
type Request struct {
	Topic string `json:"topic"`
}

// Result is a generated poem.
type Result struct {
	Topic string `json:"topic"`
	Poem  string `json:"poem"`
	Model string `json:"model"`
}

var popularTopics = []string{
	"غزل عذري",
	"مدح الشجاعة",
	"وصف الطبيعة",
	"الحكمة",
	"رثاء الوطن",
	"الفخر بالنفس",
	"شعر عمودي في الغزل",
	"قصيدة تفعيلة في الحنين",
}

// PopularTopics returns suggested topics for the generation form.
func PopularTopics() []string {
	return append([]string{}, popularTopics...)
}
