package service

import (
	"errors"
	"naira_backend/internal/model"
	"naira_backend/internal/nlp"
	"naira_backend/internal/repository"
	"naira_backend/internal/util"
	"testing"

	"gorm.io/gorm"
)

type fixedAnalyzer struct {
	sentiment nlp.Sentiment
}

func (a fixedAnalyzer) Analyze(string) nlp.Sentiment { return a.sentiment }

type stubAnnotator struct {
	annotation *nlp.Annotation
	err        error
}

func (a stubAnnotator) Annotate(string) (*nlp.Annotation, error) { return a.annotation, a.err }

func newChatService(t *testing.T, analyzer nlp.SentimentAnalyzer, annotator nlp.Annotator) (*ChatService, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)

	classifier := nlp.NewClassifier(map[string][]string{
		"task_management": {"create task", "remind me"},
		"academic_query":  {"explain", "what is"},
	}, 0.5)
	processor := nlp.NewProcessor(classifier, analyzer, annotator)

	svc := NewChatService(
		repository.NewConversationRepository(db, nil),
		processor,
		nlp.NewResponder(nlp.DefaultThresholds()),
		nlp.NewKeywordBot(),
		NewTaskService(repository.NewTaskRepository(db)),
	)
	return svc, db
}

func TestProcessMessageStoresBothRoles(t *testing.T) {
	svc, db := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{Compound: 0.3}},
		stubAnnotator{annotation: &nlp.Annotation{}})

	reply, err := svc.ProcessMessage(1, "what is normalization", "", "")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if reply.ConversationID == "" {
		t.Fatal("expected a conversation to be created")
	}
	if reply.Context != "general" {
		t.Errorf("expected default context, got %q", reply.Context)
	}
	if reply.Actions == nil {
		t.Error("actions must be an empty slice, not nil")
	}

	var messages []model.Message
	if err := db.Where("conversation_id = ?", reply.ConversationID).
		Order("created_at ASC").Find(&messages).Error; err != nil {
		t.Fatalf("load messages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected user and assistant messages, got %d", len(messages))
	}
	if messages[0].Role != "user" || messages[0].Sentiment == nil {
		t.Errorf("user message must carry sentiment, got %+v", messages[0])
	}
	if messages[1].Role != "assistant" || messages[1].Sentiment != nil {
		t.Errorf("assistant message must not carry sentiment, got %+v", messages[1])
	}
}

func TestProcessMessageCreatesTaskFromAction(t *testing.T) {
	svc, db := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{Compound: 0.1}},
		stubAnnotator{annotation: &nlp.Annotation{
			NounPhrases: []string{"physics homework"},
			Spans:       []nlp.Span{{Text: "tomorrow", Label: nlp.LabelDate}},
		}})

	reply, err := svc.ProcessMessage(1, "create task for my physics homework tomorrow", "", "")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(reply.Actions) != 1 || reply.Actions[0].Type != nlp.ActionCreateTask {
		t.Fatalf("expected create_task action, got %v", reply.Actions)
	}

	var task model.Task
	if err := db.Where("user_id = ?", 1).First(&task).Error; err != nil {
		t.Fatalf("expected task persisted: %v", err)
	}
	if task.Title != "physics homework" {
		t.Errorf("unexpected title %q", task.Title)
	}
	if task.DueDate == nil {
		t.Error("expected due date resolved")
	}
}

func TestProcessMessageSurvivesAnnotatorFailure(t *testing.T) {
	svc, _ := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{Compound: 0.0}},
		stubAnnotator{err: errors.New("model unavailable")})

	reply, err := svc.ProcessMessage(1, "explain recursion", "", "")
	if err != nil {
		t.Fatalf("annotation failure must not block the reply: %v", err)
	}
	if reply.Response == "" {
		t.Error("expected a reply despite annotation failure")
	}
}

func TestProcessMessageConversationAccess(t *testing.T) {
	svc, _ := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{}},
		stubAnnotator{annotation: &nlp.Annotation{}})

	reply, err := svc.ProcessMessage(1, "hello there", "", "exam_prep")
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if reply.Context != "exam_prep" {
		t.Errorf("expected requested context, got %q", reply.Context)
	}

	if _, err := svc.ProcessMessage(2, "hi", reply.ConversationID, ""); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("expected permission denied for other user, got %v", err)
	}
	if _, err := svc.ProcessMessage(1, "hi", "missing-conversation", ""); !errors.Is(err, util.ErrConversationNotFound) {
		t.Errorf("expected conversation not found, got %v", err)
	}
}

func TestHistoryAndConversations(t *testing.T) {
	svc, _ := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{}},
		stubAnnotator{annotation: &nlp.Annotation{}})

	reply, err := svc.ProcessMessage(1, "what is sql", "", "")
	if err != nil {
		t.Fatalf("process: %v", err)
	}

	history, err := svc.History(1, reply.ConversationID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(history))
	}
	if history[0].Role != "user" {
		t.Errorf("expected chronological order, got %q first", history[0].Role)
	}

	if _, err := svc.History(2, reply.ConversationID); !errors.Is(err, util.ErrPermissionDenied) {
		t.Errorf("expected permission denied, got %v", err)
	}

	summaries, err := svc.Conversations(1)
	if err != nil {
		t.Fatalf("conversations: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 conversation, got %d", len(summaries))
	}
	if summaries[0].LastMessage == "" {
		t.Error("expected last message preview")
	}
}

func TestQuickReply(t *testing.T) {
	svc, _ := newChatService(t,
		fixedAnalyzer{nlp.Sentiment{}},
		stubAnnotator{annotation: &nlp.Annotation{}})

	if reply := svc.QuickReply("hello"); reply != nlp.GreetingMenu {
		t.Errorf("expected greeting menu, got %q", reply)
	}
}
