package queue

import (
	"encoding/json"

	"github.com/rabbitmq/amqp091-go"
)

// ArticleJobMsg is the payload shared by the analyze and embed queues.
type ArticleJobMsg struct {
	ArticleID string `json:"article_id"`
}

// DeleteJobMsg asks the worker to clean up external resources of an
// already deleted article. Source tells which cleanup applies.
type DeleteJobMsg struct {
	ArticleID string `json:"article_id"`
	Source    string `json:"source"`
}

// PublishArticleJob marshals an ArticleJobMsg onto the named queue.
func PublishArticleJob(ch *amqp091.Channel, queueName, articleID string) error {
	body, err := json.Marshal(ArticleJobMsg{ArticleID: articleID})
	if err != nil {
		return err
	}
	return PublishFIFO(ch, queueName, body)
}

// PublishDeleteJob enqueues cleanup for a removed article.
func PublishDeleteJob(ch *amqp091.Channel, articleID, source string) error {
	body, err := json.Marshal(DeleteJobMsg{ArticleID: articleID, Source: source})
	if err != nil {
		return err
	}
	return PublishFIFO(ch, DeleteQueue, body)
}
