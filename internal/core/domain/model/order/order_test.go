package order_test

import (
	"testing"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParty(t *testing.T, name string, email string) order.Party {
	t.Helper()
	party, err := order.NewParty(kernel.NewUUID(), name, email)
	require.NoError(t, err)
	return party
}

func mustWebsite(t *testing.T, domain string) order.Website {
	t.Helper()
	website, err := order.NewWebsite(kernel.NewUUID(), domain)
	require.NoError(t, err)
	return website
}

func mustPrice(t *testing.T, cents int64) kernel.Price {
	t.Helper()
	price, err := kernel.NewPrice(cents)
	require.NoError(t, err)
	return price
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		mustParty(t, "Acme Outreach", "outreach@acme.test"),
		mustParty(t, "Tech Blog Media", "editor@techblog.test"),
		mustWebsite(t, "techblog.test"),
		order.GuestPost,
		mustPrice(t, 12500),
		"10 Kubernetes Pitfalls",
		order.Requirements{},
	)
	require.NoError(t, err)
	return testOrder
}

// orderAtStatus walks an order through legal transitions until it reaches target.
func orderAtStatus(t *testing.T, target order.Status) *order.Order {
	t.Helper()
	testOrder := newTestOrder(t)
	advertiserID := testOrder.Advertiser().ID()
	publisherID := testOrder.Publisher().ID()

	switch target {
	case order.Requested:
	case order.InProgress:
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.InProgress, "", ""))
	case order.AdvertiserApproval:
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.InProgress, "", ""))
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.AdvertiserApproval, "", ""))
	case order.Completed:
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.InProgress, "", ""))
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.AdvertiserApproval, "", ""))
		require.NoError(t, testOrder.Transition(advertiserID, order.Advertiser, order.Completed, "", ""))
	case order.Rejected:
		require.NoError(t, testOrder.Transition(publisherID, order.Publisher, order.Rejected, "", "no capacity"))
	default:
		t.Fatalf("cannot build order at status %s", target)
	}

	require.Equal(t, target, testOrder.Status())
	return testOrder
}

func TestNewOrder(t *testing.T) {
	t.Run("creates order in requested status with seeded timeline", func(t *testing.T) {
		testOrder := newTestOrder(t)

		assert.Equal(t, order.Requested, testOrder.Status())
		assert.Empty(t, testOrder.RejectionReason())
		assert.Nil(t, testOrder.CompletedAt())
		assert.Equal(t, int64(1), testOrder.Version())
		assert.WithinDuration(t, time.Now().UTC(), testOrder.CreatedAt(), time.Second)

		timeline := testOrder.Timeline()
		require.Len(t, timeline, 1)
		assert.Equal(t, order.Requested, timeline[0].Status())
		assert.Equal(t, "order placed", timeline[0].Note())
		assert.True(t, timeline[0].UpdatedBy().IsEqual(testOrder.Advertiser().ID()))
	})

	t.Run("rejects same user on both sides", func(t *testing.T) {
		shared, err := order.NewParty(kernel.NewUUID(), "Shared User", "shared@user.test")
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(),
			shared,
			shared,
			mustWebsite(t, "techblog.test"),
			order.GuestPost,
			mustPrice(t, 12500),
			"",
			order.Requirements{},
		)

		require.Error(t, err)
		assert.Equal(t, order.ErrSamePartyOnBothSides, err)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{},
			order.Party{},
			mustParty(t, "Tech Blog Media", "editor@techblog.test"),
			order.Website{},
			order.ServiceTypeUnknown,
			kernel.Price{},
			"",
			order.Requirements{},
		)

		require.Error(t, err)
	})

	t.Run("allows empty post title for link insertions", func(t *testing.T) {
		testOrder, err := order.NewOrder(
			kernel.NewUUID(),
			mustParty(t, "Acme Outreach", "outreach@acme.test"),
			mustParty(t, "Tech Blog Media", "editor@techblog.test"),
			mustWebsite(t, "techblog.test"),
			order.LinkInsertion,
			mustPrice(t, 4500),
			"",
			order.Requirements{},
		)

		require.NoError(t, err)
		assert.Empty(t, testOrder.PostTitle())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("constructed order is valid", func(t *testing.T) {
		require.NoError(t, newTestOrder(t).Validate())
	})

	t.Run("directly instantiated order is invalid", func(t *testing.T) {
		var testOrder order.Order

		err := testOrder.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("nil order is invalid", func(t *testing.T) {
		var testOrder *order.Order

		require.Error(t, testOrder.Validate())
	})
}

func TestOrder_Transition_FullLifecycle(t *testing.T) {
	testOrder := newTestOrder(t)
	advertiserID := testOrder.Advertiser().ID()
	publisherID := testOrder.Publisher().ID()

	err := testOrder.Transition(publisherID, order.Publisher, order.InProgress, "", "")
	require.NoError(t, err)
	assert.Equal(t, order.InProgress, testOrder.Status())
	assert.Len(t, testOrder.Timeline(), 2)

	err = testOrder.Transition(publisherID, order.Publisher, order.AdvertiserApproval, "draft at https://techblog.test/preview/42", "")
	require.NoError(t, err)
	assert.Equal(t, order.AdvertiserApproval, testOrder.Status())
	assert.Len(t, testOrder.Timeline(), 3)

	err = testOrder.Transition(advertiserID, order.Advertiser, order.Completed, "", "")
	require.NoError(t, err)
	assert.Equal(t, order.Completed, testOrder.Status())
	require.NotNil(t, testOrder.CompletedAt())
	assert.WithinDuration(t, time.Now().UTC(), *testOrder.CompletedAt(), time.Second)

	timeline := testOrder.Timeline()
	require.Len(t, timeline, 4)
	assert.Equal(t, order.Completed, timeline[len(timeline)-1].Status())

	// Terminal: every further call fails regardless of actor or target.
	for _, target := range allStatuses() {
		err = testOrder.Transition(advertiserID, order.Advertiser, target, "", "reason")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)

		err = testOrder.Transition(publisherID, order.Publisher, target, "", "reason")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	}
	assert.Len(t, testOrder.Timeline(), 4)
}

func TestOrder_Transition_RoleEnforcement(t *testing.T) {
	// For every legal pair, the counterpart role must be refused even though
	// the caller is a legitimate party on the order.
	testCases := []struct {
		name      string
		from      order.Status
		target    order.Status
		wrongRole order.Role
	}{
		{name: "advertiser cannot accept", from: order.Requested, target: order.InProgress, wrongRole: order.Advertiser},
		{name: "advertiser cannot reject a request", from: order.Requested, target: order.Rejected, wrongRole: order.Advertiser},
		{name: "advertiser cannot submit for approval", from: order.InProgress, target: order.AdvertiserApproval, wrongRole: order.Advertiser},
		{name: "publisher cannot approve", from: order.AdvertiserApproval, target: order.Completed, wrongRole: order.Publisher},
		{name: "publisher cannot reject submitted work", from: order.AdvertiserApproval, target: order.Rejected, wrongRole: order.Publisher},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testOrder := orderAtStatus(t, tc.from)

			actor, err := testOrder.Party(tc.wrongRole)
			require.NoError(t, err)

			err = testOrder.Transition(actor.ID(), tc.wrongRole, tc.target, "", "reason")

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrActorForbidden)
			assert.Equal(t, tc.from, testOrder.Status(), "status must not change on refusal")
		})
	}
}

func TestOrder_Transition_ActorIdentity(t *testing.T) {
	t.Run("stranger claiming publisher role is forbidden", func(t *testing.T) {
		testOrder := newTestOrder(t)

		err := testOrder.Transition(kernel.NewUUID(), order.Publisher, order.InProgress, "", "")

		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})

	t.Run("advertiser claiming publisher role is forbidden", func(t *testing.T) {
		testOrder := newTestOrder(t)

		err := testOrder.Transition(testOrder.Advertiser().ID(), order.Publisher, order.InProgress, "", "")

		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})

	t.Run("unknown role is rejected before identity checks", func(t *testing.T) {
		testOrder := newTestOrder(t)

		err := testOrder.Transition(testOrder.Publisher().ID(), order.RoleUnknown, order.InProgress, "", "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Transition_RejectionReason(t *testing.T) {
	t.Run("rejecting without a reason fails", func(t *testing.T) {
		for _, reason := range []string{"", "   ", "\t\n"} {
			testOrder := newTestOrder(t)

			err := testOrder.Transition(testOrder.Publisher().ID(), order.Publisher, order.Rejected, "", reason)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Equal(t, order.Requested, testOrder.Status())
		}
	})

	t.Run("publisher rejects a request with a reason", func(t *testing.T) {
		testOrder := newTestOrder(t)

		err := testOrder.Transition(testOrder.Publisher().ID(), order.Publisher, order.Rejected, "", "budget cut")

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, testOrder.Status())
		assert.Equal(t, "budget cut", testOrder.RejectionReason())
	})

	t.Run("advertiser rejects submitted work with a reason", func(t *testing.T) {
		testOrder := orderAtStatus(t, order.AdvertiserApproval)

		err := testOrder.Transition(testOrder.Advertiser().ID(), order.Advertiser, order.Rejected, "", "off topic")

		require.NoError(t, err)
		assert.Equal(t, order.Rejected, testOrder.Status())
		assert.Equal(t, "off topic", testOrder.RejectionReason())
	})

	t.Run("rejecting in-progress work is an invalid transition", func(t *testing.T) {
		testOrder := orderAtStatus(t, order.InProgress)

		err := testOrder.Transition(testOrder.Publisher().ID(), order.Publisher, order.Rejected, "", "changed my mind")

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestOrder_Transition_NoOp(t *testing.T) {
	testOrder := orderAtStatus(t, order.InProgress)

	err := testOrder.Transition(testOrder.Publisher().ID(), order.Publisher, order.InProgress, "", "")

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Len(t, testOrder.Timeline(), 2, "a refused duplicate must not append to the timeline")
}

func TestOrder_Transition_TimelineNotes(t *testing.T) {
	t.Run("blank note falls back to the default per transition", func(t *testing.T) {
		testOrder := orderAtStatus(t, order.Completed)

		timeline := testOrder.Timeline()
		require.Len(t, timeline, 4)
		assert.Equal(t, "order placed", timeline[0].Note())
		assert.Equal(t, "accepted", timeline[1].Note())
		assert.Equal(t, "submitted for approval", timeline[2].Note())
		assert.Equal(t, "approved", timeline[3].Note())
	})

	t.Run("caller note is preserved verbatim", func(t *testing.T) {
		testOrder := newTestOrder(t)

		err := testOrder.Transition(testOrder.Publisher().ID(), order.Publisher, order.InProgress, "starting tomorrow", "")

		require.NoError(t, err)
		timeline := testOrder.Timeline()
		assert.Equal(t, "starting tomorrow", timeline[len(timeline)-1].Note())
	})

	t.Run("last timeline entry always matches the current status", func(t *testing.T) {
		for _, status := range allStatuses() {
			testOrder := orderAtStatus(t, status)

			timeline := testOrder.Timeline()
			assert.Equal(t, testOrder.Status(), timeline[len(timeline)-1].Status())
		}
	})
}

func TestOrder_Timeline_ReturnsCopy(t *testing.T) {
	testOrder := newTestOrder(t)

	timeline := testOrder.Timeline()
	timeline[0] = order.TimelineEntry{}

	fresh := testOrder.Timeline()
	require.Len(t, fresh, 1)
	assert.Equal(t, order.Requested, fresh[0].Status())
}

func TestOrder_Counterpart(t *testing.T) {
	testOrder := newTestOrder(t)

	counterpart, err := testOrder.Counterpart(order.Advertiser)
	require.NoError(t, err)
	assert.True(t, counterpart.ID().IsEqual(testOrder.Publisher().ID()))

	counterpart, err = testOrder.Counterpart(order.Publisher)
	require.NoError(t, err)
	assert.True(t, counterpart.ID().IsEqual(testOrder.Advertiser().ID()))

	_, err = testOrder.Counterpart(order.RoleUnknown)
	require.Error(t, err)
}

func TestRestoreOrder(t *testing.T) {
	restoreParams := func(t *testing.T) order.RestoreOrderParams {
		t.Helper()
		source := orderAtStatus(t, order.InProgress)
		return order.RestoreOrderParams{
			ID:           source.ID(),
			Advertiser:   source.Advertiser(),
			Publisher:    source.Publisher(),
			Website:      source.Website(),
			ServiceType:  source.ServiceType(),
			Price:        source.Price(),
			PostTitle:    source.PostTitle(),
			Requirements: source.Requirements(),
			Status:       source.Status(),
			Timeline:     source.Timeline(),
			CreatedAt:    source.CreatedAt(),
			UpdatedAt:    source.UpdatedAt(),
			Version:      3,
		}
	}

	t.Run("restores a consistent snapshot", func(t *testing.T) {
		params := restoreParams(t)

		restored, err := order.RestoreOrder(params)

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, restored.Status())
		assert.Equal(t, int64(3), restored.Version())
		assert.Len(t, restored.Timeline(), 2)
		require.NoError(t, restored.Validate())
	})

	t.Run("rejects empty timeline", func(t *testing.T) {
		params := restoreParams(t)
		params.Timeline = nil

		_, err := order.RestoreOrder(params)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects timeline whose last entry mismatches the status", func(t *testing.T) {
		params := restoreParams(t)
		params.Status = order.AdvertiserApproval

		_, err := order.RestoreOrder(params)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects rejection reason on a non-rejected order", func(t *testing.T) {
		params := restoreParams(t)
		params.RejectionReason = "should not be here"

		_, err := order.RestoreOrder(params)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects missing completion timestamp on a completed order", func(t *testing.T) {
		source := orderAtStatus(t, order.Completed)
		params := order.RestoreOrderParams{
			ID:           source.ID(),
			Advertiser:   source.Advertiser(),
			Publisher:    source.Publisher(),
			Website:      source.Website(),
			ServiceType:  source.ServiceType(),
			Price:        source.Price(),
			PostTitle:    source.PostTitle(),
			Requirements: source.Requirements(),
			Status:       order.Completed,
			CompletedAt:  nil,
			Timeline:     source.Timeline(),
			CreatedAt:    source.CreatedAt(),
			UpdatedAt:    source.UpdatedAt(),
			Version:      4,
		}

		_, err := order.RestoreOrder(params)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects version below 1", func(t *testing.T) {
		params := restoreParams(t)
		params.Version = 0

		_, err := order.RestoreOrder(params)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTimelineEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry, err := order.NewTimelineEntry(order.InProgress, time.Now().UTC(), "accepted", kernel.NewUUID())

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, entry.Status())
		assert.Equal(t, "accepted", entry.Note())
		require.NoError(t, entry.Validate())
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := order.NewTimelineEntry(order.InProgress, time.Time{}, "", kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects invalid status and actor", func(t *testing.T) {
		_, err := order.NewTimelineEntry(order.StatusUnknown, time.Now().UTC(), "", kernel.NewUUID())
		require.Error(t, err)

		_, err = order.NewTimelineEntry(order.InProgress, time.Now().UTC(), "", kernel.UUID{})
		require.Error(t, err)
	})
}

func TestParty(t *testing.T) {
	t.Run("requires id, name, and email", func(t *testing.T) {
		_, err := order.NewParty(kernel.UUID{}, "Name", "mail@test")
		require.Error(t, err)

		_, err = order.NewParty(kernel.NewUUID(), "", "mail@test")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewParty(kernel.NewUUID(), "Name", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestWebsite(t *testing.T) {
	t.Run("requires id and domain", func(t *testing.T) {
		_, err := order.NewWebsite(kernel.UUID{}, "techblog.test")
		require.Error(t, err)

		_, err = order.NewWebsite(kernel.NewUUID(), "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRequirements(t *testing.T) {
	t.Run("zero value means no requirements", func(t *testing.T) {
		var requirements order.Requirements

		assert.Zero(t, requirements.MinWordCount())
		assert.Zero(t, requirements.MaxLinks())
		assert.Nil(t, requirements.TopicsAllowed())
		assert.Nil(t, requirements.Deadline())
	})

	t.Run("rejects negative counts", func(t *testing.T) {
		_, err := order.NewRequirements(-1, 0, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = order.NewRequirements(0, -1, nil, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("topic lists are copied", func(t *testing.T) {
		allowed := []string{"devops", "cloud"}
		requirements, err := order.NewRequirements(800, 2, allowed, nil, nil)
		require.NoError(t, err)

		allowed[0] = "mutated"

		assert.Equal(t, []string{"devops", "cloud"}, requirements.TopicsAllowed())
	})
}
