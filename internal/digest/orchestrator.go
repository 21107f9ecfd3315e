// Package digest assembles and delivers per-user news digests: it fetches
// articles for subscribed topics, applies keyword filters, composes the
// display text and pushes it through the delivery surface in size-bounded
// chunks.
package digest

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/snchkv/newswatcher/internal/filter"
	"github.com/snchkv/newswatcher/internal/model"
	"github.com/snchkv/newswatcher/internal/reporter"
)

type NewsProvider interface {
	News(ctx context.Context, query string) ([]model.Article, error)
}

type SubscriptionStorage interface {
	Topics(user model.UserID) []model.Topic
	SetLastDigest(user model.UserID, t time.Time)
	Snapshot() map[model.UserID]model.Subscription
}

type Deliverer interface {
	Deliver(user model.UserID, text string, html, noPreview bool) error
}

type Orchestrator struct {
	store    SubscriptionStorage
	news     NewsProvider
	sender   Deliverer
	reporter *reporter.Reporter
}

func New(
	store SubscriptionStorage,
	news NewsProvider,
	sender Deliverer,
	reporter *reporter.Reporter,
) *Orchestrator {
	return &Orchestrator{
		store:    store,
		news:     news,
		sender:   sender,
		reporter: reporter,
	}
}

// SendTopicNews fetches articles for one explicit query and delivers them
// to the user. If the user has a stored topic whose name matches the query
// case-insensitively, that topic's keyword filter is applied first. A fetch
// failure is treated the same as an empty result.
func (o *Orchestrator) SendTopicNews(ctx context.Context, user model.UserID, query string) error {
	articles, err := o.news.News(ctx, query)
	if err != nil {
		log.Printf("[ERROR] failed to fetch news for query %q: %v", query, err)
		articles = nil
	}

	for _, t := range o.store.Topics(user) {
		if strings.EqualFold(t.Name, query) {
			articles = filter.ByKeywords(articles, t.Keywords)
			break
		}
	}

	if len(articles) == 0 {
		return o.sender.Deliver(user, FormatNews(nil, query), false, false)
	}

	return o.deliverChunked(user, FormatNews(articles, query))
}

// DigestForUser runs the digest pipeline for one user: every topic is
// fetched and filtered in stored order, non-empty results accumulate into
// one message separated by dividers. When nothing was found a fixed notice
// is sent instead. LastDigest is stamped once the user's delivery
// completes, whether or not any article was found.
func (o *Orchestrator) DigestForUser(ctx context.Context, user model.UserID, sub model.Subscription) error {
	divider := strings.Repeat("=", 50)

	var (
		buf     strings.Builder
		hasNews bool
	)
	for _, topic := range sub.Topics {
		articles, err := o.news.News(ctx, topic.Name)
		if err != nil {
			log.Printf("[ERROR] failed to fetch news for topic %q: %v", topic.Name, err)
			continue
		}

		articles = filter.ByKeywords(articles, topic.Keywords)
		if len(articles) == 0 {
			continue
		}

		hasNews = true
		buf.WriteString(FormatNews(articles, topic.Name))
		buf.WriteString("\n" + divider + "\n\n")
	}

	var deliverErr error
	if hasNews {
		deliverErr = o.deliverChunked(user, "📰 <b>Дайджест новостей</b>\n\n"+buf.String())
	} else {
		deliverErr = o.sender.Deliver(user, "📰 Сегодня новостей по вашим темам не найдено.", false, false)
	}
	if deliverErr != nil {
		return deliverErr
	}

	o.store.SetLastDigest(user, time.Now())
	return nil
}

// RunDaily delivers digests to every user who enabled them and has at
// least one topic. A single user's failure is logged and reported, never
// aborts the batch.
func (o *Orchestrator) RunDaily(ctx context.Context) {
	log.Printf("[INFO] starting daily digest run")

	subs := o.store.Snapshot()
	users := make([]model.UserID, 0, len(subs))
	for id := range subs {
		users = append(users, id)
	}
	slices.Sort(users)

	var sent int
	for _, user := range users {
		if ctx.Err() != nil {
			log.Printf("[INFO] daily digest run cancelled")
			return
		}

		sub := subs[user]
		if !sub.DailyDigest || len(sub.Topics) == 0 {
			continue
		}

		if err := o.DigestForUser(ctx, user, sub); err != nil {
			log.Printf("[ERROR] failed to send digest to user %d: %v", user, err)
			o.reporter.Notify(fmt.Sprintf("digest failed for user %d: %v", user, err))
			continue
		}
		sent++
	}

	log.Printf("[INFO] daily digest run finished, %d digests sent", sent)
}

func (o *Orchestrator) deliverChunked(user model.UserID, text string) error {
	for _, chunk := range SplitMessage(text) {
		if err := o.sender.Deliver(user, chunk, true, true); err != nil {
			return err
		}
	}
	return nil
}
