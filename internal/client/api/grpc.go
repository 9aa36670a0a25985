package api

import (
	"context"
	"fmt"
	"time"

	"github.com/ashish-aa/skillmesh/internal/client/models"
	"github.com/ashish-aa/skillmesh/internal/common"
	pb "github.com/ashish-aa/skillmesh/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCGateway implements Gateway over the backend's gRPC API. It attaches
// the access token to every outbound call and transparently retries once
// with a refreshed token when the server reports expiry.
type GRPCGateway struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.SkillMeshClient
	accessToken  string
	refreshToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (g *GRPCGateway) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, g.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if g.refreshToken == "" {
			return err
		}

		refreshResponse, err := g.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: g.refreshToken})
		if err != nil {
			return err
		}

		g.accessToken = refreshResponse.AccessToken
		g.refreshToken = refreshResponse.RefreshToken

		ctx = withAccessToken(ctx, g.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// NewGRPCGateway dials the backend at endpointURL. The connection is lazy;
// a failure here indicates a malformed target, not an unreachable server.
func NewGRPCGateway(endpointURL string) (*GRPCGateway, error) {
	g := &GRPCGateway{endpointURL: endpointURL}

	conn, err := grpc.NewClient(g.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(g.accessTokenInterceptor))
	if err != nil {
		return nil, err
	}
	g.conn = conn
	g.client = pb.NewSkillMeshClient(conn)
	return g, nil
}

func (g *GRPCGateway) Close() error {
	return g.conn.Close()
}

func (g *GRPCGateway) SetTokens(accessToken, refreshToken string) {
	g.accessToken = accessToken
	g.refreshToken = refreshToken
}

func (g *GRPCGateway) sessionFromAuthResponse(resp *pb.AuthResponse) models.Session {
	g.accessToken = resp.AccessToken
	g.refreshToken = resp.RefreshToken
	return models.Session{
		Account: models.Account{
			ID:            resp.AccountId,
			Email:         resp.Email,
			EmailVerified: resp.EmailVerified,
		},
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
}

func (g *GRPCGateway) SignUp(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := g.client.SignUp(ctx, &pb.SignUpRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, g.mapError(err)
	}
	return g.sessionFromAuthResponse(resp), nil
}

func (g *GRPCGateway) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := g.client.SignIn(ctx, &pb.SignInRequest{Email: email, Password: password})
	if err != nil {
		return models.Session{}, g.mapError(err)
	}
	return g.sessionFromAuthResponse(resp), nil
}

func (g *GRPCGateway) SendVerificationEmail(ctx context.Context) error {
	_, err := g.client.SendVerificationEmail(ctx, &pb.SendVerificationEmailRequest{})
	if err != nil {
		return g.mapError(err)
	}
	return nil
}

func (g *GRPCGateway) RefreshVerificationStatus(ctx context.Context) (bool, error) {
	resp, err := g.client.RefreshVerificationStatus(ctx, &pb.RefreshVerificationStatusRequest{})
	if err != nil {
		return false, g.mapError(err)
	}
	return resp.Verified, nil
}

func (g *GRPCGateway) GetProfile(ctx context.Context, accountID string) (models.Profile, bool, error) {
	resp, err := g.client.GetProfile(ctx, &pb.GetProfileRequest{AccountId: accountID})
	if err != nil {
		return models.Profile{}, false, g.mapError(err)
	}
	if !resp.Exists || resp.Profile == nil {
		return models.Profile{}, false, nil
	}
	p := resp.Profile
	return models.Profile{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Location:    p.Location,
		PictureURL:  p.PictureUrl,
		Completed:   p.ProfileCompleted,
		Categories:  p.Categories,
		CreatedAt:   time.Unix(p.CreatedAt, 0),
	}, true, nil
}

func (g *GRPCGateway) PutProfile(ctx context.Context, accountID string, profile models.Profile) error {
	req := &pb.PutProfileRequest{
		AccountId: accountID,
		Profile: &pb.Profile{
			FirstName:        profile.FirstName,
			LastName:         profile.LastName,
			DateOfBirth:      profile.DateOfBirth,
			Location:         profile.Location,
			PictureUrl:       profile.PictureURL,
			ProfileCompleted: profile.Completed,
			Categories:       profile.Categories,
		},
	}
	if _, err := g.client.PutProfile(ctx, req); err != nil {
		return g.mapError(err)
	}
	return nil
}

func (g *GRPCGateway) UpdateCategories(ctx context.Context, accountID string, categories []string) error {
	req := &pb.UpdateCategoriesRequest{AccountId: accountID, Categories: categories}
	if _, err := g.client.UpdateCategories(ctx, req); err != nil {
		return g.mapError(err)
	}
	return nil
}

func (g *GRPCGateway) AddSkillOffer(ctx context.Context, accountID string, offer models.SkillOffer) (string, error) {
	req := &pb.AddSkillOfferRequest{
		AccountId: accountID,
		Offer: &pb.SkillOffer{
			Id:          offer.ID,
			Title:       offer.Title,
			Category:    offer.Category,
			Subcategory: offer.Subcategory,
			Description: offer.Description,
		},
	}
	resp, err := g.client.AddSkillOffer(ctx, req)
	if err != nil {
		return "", g.mapError(err)
	}
	return resp.OfferId, nil
}

func (g *GRPCGateway) ListSkillOffers(ctx context.Context, accountID string) ([]models.SkillOffer, error) {
	resp, err := g.client.ListSkillOffers(ctx, &pb.ListSkillOffersRequest{AccountId: accountID})
	if err != nil {
		return nil, g.mapError(err)
	}

	offers := make([]models.SkillOffer, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		offers = append(offers, models.SkillOffer{
			ID:          o.Id,
			Title:       o.Title,
			Category:    o.Category,
			Subcategory: o.Subcategory,
			Description: o.Description,
			CreatedAt:   time.Unix(o.CreatedAt, 0),
		})
	}
	return offers, nil
}

func (g *GRPCGateway) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	resp, err := g.client.ReverseGeocode(ctx, &pb.ReverseGeocodeRequest{Latitude: latitude, Longitude: longitude})
	if err != nil {
		return "", g.mapError(err)
	}
	return resp.Address, nil
}

func (g *GRPCGateway) Ping(ctx context.Context) error {
	resp, err := g.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return g.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (g *GRPCGateway) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.InvalidArgument:
		return common.ErrInvalidCredentials
	case codes.AlreadyExists:
		return common.ErrEmailTaken
	case codes.NotFound:
		return common.ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
