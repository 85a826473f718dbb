package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Both services exchange google.protobuf.Struct messages, so the standard
// proto codec carries them and any gRPC client can call them with
// conn.Invoke without generated stubs.

const (
	RentalServiceName = "rentwheels.v1.RentalService"
	AdminServiceName  = "rentwheels.v1.AdminService"
)

type RentalServiceServer interface {
	CreateRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ChangeRentalStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AcceptRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RejectRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CancelRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CompleteRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetRental(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListMyRentals(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListProviderRentals(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetVehicleAvailability(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type AdminServiceServer interface {
	ChangeProviderStatus(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPendingProviders(context.Context, *structpb.Struct) (*structpb.Struct, error)
	CompleteExpiredRentals(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type structCall func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(service, method string, call structCall) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv, ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

func rentalMethod(name string, fn func(RentalServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return unaryMethod(RentalServiceName, name, func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return fn(srv.(RentalServiceServer), ctx, req)
	})
}

func adminMethod(name string, fn func(AdminServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodDesc {
	return unaryMethod(AdminServiceName, name, func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
		return fn(srv.(AdminServiceServer), ctx, req)
	})
}

var RentalServiceDesc = grpc.ServiceDesc{
	ServiceName: RentalServiceName,
	HandlerType: (*RentalServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rentalMethod("CreateRental", RentalServiceServer.CreateRental),
		rentalMethod("ChangeRentalStatus", RentalServiceServer.ChangeRentalStatus),
		rentalMethod("AcceptRental", RentalServiceServer.AcceptRental),
		rentalMethod("RejectRental", RentalServiceServer.RejectRental),
		rentalMethod("CancelRental", RentalServiceServer.CancelRental),
		rentalMethod("CompleteRental", RentalServiceServer.CompleteRental),
		rentalMethod("GetRental", RentalServiceServer.GetRental),
		rentalMethod("ListMyRentals", RentalServiceServer.ListMyRentals),
		rentalMethod("ListProviderRentals", RentalServiceServer.ListProviderRentals),
		rentalMethod("SetVehicleAvailability", RentalServiceServer.SetVehicleAvailability),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rentwheels/v1/rental.proto",
}

var AdminServiceDesc = grpc.ServiceDesc{
	ServiceName: AdminServiceName,
	HandlerType: (*AdminServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		adminMethod("ChangeProviderStatus", AdminServiceServer.ChangeProviderStatus),
		adminMethod("ListPendingProviders", AdminServiceServer.ListPendingProviders),
		adminMethod("CompleteExpiredRentals", AdminServiceServer.CompleteExpiredRentals),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rentwheels/v1/admin.proto",
}

func RegisterRentalServiceServer(s grpc.ServiceRegistrar, srv RentalServiceServer) {
	s.RegisterService(&RentalServiceDesc, srv)
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv AdminServiceServer) {
	s.RegisterService(&AdminServiceDesc, srv)
}
